// Package substitution loads deployment-time overrides for the configuration
// namespace from override files, dotenv files and the process environment, and
// merges them over the compiled-in defaults.
package substitution
