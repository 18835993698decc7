package substitution

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
)

// ErrUnknownFormat indicates an override file extension that cannot be parsed.
var ErrUnknownFormat = errors.New("unsupported override file format")

// FromFile reads an override document. YAML (.yaml, .yml), JSON (.json) and
// JSON with comments (.jsonc) are supported. The document must be a flat
// object of primitive values; recognized keys must match their kind.
func FromFile(path string) (namespace.Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parseDocument(data, filepath.Ext(path))
}

func parseDocument(data []byte, ext string) (namespace.Namespace, error) {
	var raw []byte
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		raw = jsonc.ToJSON(data)
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		raw = converted
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	// Numbers stay json.Number so large integers on unknown keys keep their digits.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	obj, _ := doc.(map[string]any)
	return namespace.Namespace(obj), nil
}
