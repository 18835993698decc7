// Package config loads the service's own runtime configuration from multiple
// sources (YAML files, environment variables, CLI flags) with precedence: CLI
// flags > YAML config > Environment variables > Defaults. It does not hold the
// front-end namespace itself; it only says where its overrides come from and
// how it is served.
package config
