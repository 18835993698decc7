// Package render writes the configuration namespace in the forms the browser
// consumes: an env.js script that populates a global object, or plain JSON.
package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
)

// DefaultGlobal is the name of the browser global holding the namespace.
const DefaultGlobal = "__env"

// ErrInvalidGlobal indicates a global name that is not a JavaScript identifier.
var ErrInvalidGlobal = errors.New("global name must be a JavaScript identifier")

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Options controls JavaScript output.
type Options struct {
	// Global is the property set on window. Defaults to DefaultGlobal.
	Global string
	// MergeOnly assigns a key only when the page has not set it already.
	MergeOnly bool
	// Header is emitted as a line comment at the top of the script.
	Header string
}

func (o Options) global() (string, error) {
	if o.Global == "" {
		return DefaultGlobal, nil
	}
	if !identifier.MatchString(o.Global) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGlobal, o.Global)
	}
	return o.Global, nil
}

// JavaScript writes ns as a self-invoking script that creates the global
// object if missing and assigns every key to it.
func JavaScript(w io.Writer, ns namespace.Namespace, opts Options) error {
	global, err := opts.global()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if opts.Header != "" {
		fmt.Fprintf(bw, "// %s\n", opts.Header)
	}
	fmt.Fprintf(bw, "(function(window) {\n")
	fmt.Fprintf(bw, "  window.%[1]s = window.%[1]s || {};\n", global)
	if opts.MergeOnly {
		fmt.Fprintf(bw, "  var env = window.%s;\n", global)
	}

	for _, key := range ns.Keys() {
		quotedKey, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("encode key %q: %w", key, err)
		}
		value, err := json.Marshal(ns[key])
		if err != nil {
			return fmt.Errorf("encode value of %q: %w", key, err)
		}

		target := fmt.Sprintf("window.%s[%s]", global, quotedKey)
		if identifier.MatchString(key) {
			target = fmt.Sprintf("window.%s.%s", global, key)
		}

		if opts.MergeOnly {
			fmt.Fprintf(bw, "  if (!(%s in env)) %s = %s;\n", quotedKey, target, value)
			continue
		}
		fmt.Fprintf(bw, "  %s = %s;\n", target, value)
	}

	fmt.Fprintf(bw, "}(this));\n")
	return bw.Flush()
}

// JSON writes ns as an indented JSON object.
func JSON(w io.Writer, ns namespace.Namespace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ns)
}

// WriteFile renders ns as JavaScript to path, replacing the file atomically.
func WriteFile(path string, ns namespace.Namespace, opts Options) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".env-*.js")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := JavaScript(tmp, ns, opts); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
