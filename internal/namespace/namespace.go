package namespace

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Namespace maps configuration keys to primitive values.
type Namespace map[string]any

// Initialize fills every recognized key missing from existing with its
// default and returns the namespace. A nil namespace is replaced by a new one.
// Present keys, recognized or not, are left untouched.
func Initialize(existing Namespace) Namespace {
	if existing == nil {
		existing = make(Namespace, len(fields))
	}
	for _, f := range fields {
		if _, ok := existing[f.Key]; ok {
			continue
		}
		existing[f.Key] = f.Default
	}
	return existing
}

// Defaults returns a new namespace holding only default values.
func Defaults() Namespace {
	return Initialize(nil)
}

// Clone returns a shallow copy.
func (n Namespace) Clone() Namespace {
	out := make(Namespace, len(n))
	for k, v := range n {
		out[k] = v
	}
	return out
}

// Merge writes every entry of overrides into n, replacing existing values.
func (n Namespace) Merge(overrides Namespace) Namespace {
	for k, v := range overrides {
		n[k] = v
	}
	return n
}

// Validate checks that recognized keys present in n hold values of their kind.
func (n Namespace) Validate() error {
	for _, f := range fields {
		v, ok := n[f.Key]
		if !ok {
			continue
		}
		if !f.Accepts(v) {
			return fmt.Errorf("%w: %s must be a %s, got %T", ErrInvalidValue, f.Key, f.Kind, v)
		}
	}
	return nil
}

// Keys returns the recognized keys present in n in declaration order followed
// by the remaining keys sorted lexically.
func (n Namespace) Keys() []string {
	keys := make([]string, 0, len(n))
	for _, f := range fields {
		if _, ok := n[f.Key]; ok {
			keys = append(keys, f.Key)
		}
	}
	extra := make([]string, 0)
	for k := range n {
		if !IsRecognized(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Coerce converts a raw textual value into the kind of field.
func Coerce(field Field, raw string) (any, error) {
	switch field.Kind {
	case KindBool:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, field.Key, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}
