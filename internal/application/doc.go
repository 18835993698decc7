// Package application provides application initialization and dependency wiring.
// It resolves the configuration namespace, builds the store, API router, static
// web root and HTTP server, keeping the main package focused on CLI parsing and
// orchestration.
package application
