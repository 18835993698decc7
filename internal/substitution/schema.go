package substitution

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
)

const schemaURL = "runtime-env://overrides.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// overridesSchema builds the JSON Schema for override documents from the
// recognized field table.
func overridesSchema() ([]byte, error) {
	props := make(map[string]any)
	for _, f := range namespace.Fields() {
		props[f.Key] = map[string]any{"type": f.Kind.String()}
	}
	doc := map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": props,
		"additionalProperties": map[string]any{
			"type": []string{"string", "boolean", "number", "null"},
		},
	}
	return json.Marshal(doc)
}

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := overridesSchema()
		if err != nil {
			schemaErr = fmt.Errorf("build schema: %w", err)
			return
		}
		compiledSchema, schemaErr = jsonschema.CompileString(schemaURL, string(raw))
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a decoded JSON document against the overrides schema.
func validateDocument(doc any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", namespace.ErrInvalidValue, err)
	}
	return nil
}
