package substitution

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
)

// LookupFunc resolves an environment variable, reporting whether it is set.
type LookupFunc func(key string) (string, bool)

// FromEnv reads <prefix><ENV_VAR> for every recognized key. Unset variables
// and empty boolean variables are skipped; set variables are coerced to the
// key's kind. Empty string variables are kept as empty strings.
func FromEnv(lookup LookupFunc, prefix string) (namespace.Namespace, error) {
	out := make(namespace.Namespace)
	for _, f := range namespace.Fields() {
		raw, ok := lookup(prefix + f.EnvVar)
		if !ok {
			continue
		}
		// An empty boolean (ENABLE_ANALYTICS= in a compose file) keeps the default.
		if f.Kind == namespace.KindBool && strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := namespace.Coerce(f, raw)
		if err != nil {
			return nil, fmt.Errorf("%s%s: %w", prefix, f.EnvVar, err)
		}
		out[f.Key] = v
	}
	return out, nil
}

// FromDotenv reads overrides from a dotenv file using the same variable names
// as FromEnv.
func FromDotenv(path, prefix string) (namespace.Namespace, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read dotenv: %w", err)
	}
	return FromEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}, prefix)
}
