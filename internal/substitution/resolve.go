package substitution

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
)

// Sources lists where overrides come from. Empty paths are skipped.
type Sources struct {
	File      string
	Dotenv    string
	EnvPrefix string
	// Lookup defaults to os.LookupEnv.
	Lookup LookupFunc
	// SkipEnv disables the process environment source.
	SkipEnv bool
}

// Resolve merges overrides with precedence process environment > dotenv >
// override file, then fills the remaining keys with defaults.
func Resolve(src Sources, logger *zap.Logger) (namespace.Namespace, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ns := make(namespace.Namespace)

	if src.File != "" {
		overrides, err := FromFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("load override file %s: %w", src.File, err)
		}
		ns.Merge(overrides)
		logger.Debug("applied override file", zap.String("path", src.File), zap.Int("keys", len(overrides)))
	}

	if src.Dotenv != "" {
		overrides, err := FromDotenv(src.Dotenv, src.EnvPrefix)
		if err != nil {
			return nil, fmt.Errorf("load dotenv %s: %w", src.Dotenv, err)
		}
		ns.Merge(overrides)
		logger.Debug("applied dotenv", zap.String("path", src.Dotenv), zap.Int("keys", len(overrides)))
	}

	if !src.SkipEnv {
		lookup := src.Lookup
		if lookup == nil {
			lookup = os.LookupEnv
		}
		overrides, err := FromEnv(lookup, src.EnvPrefix)
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		ns.Merge(overrides)
		logger.Debug("applied environment", zap.String("prefix", src.EnvPrefix), zap.Int("keys", len(overrides)))
	}

	return namespace.Initialize(ns), nil
}
