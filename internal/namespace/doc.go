// Package namespace defines the runtime configuration namespace consumed by
// the front-end: the recognized keys, their defaults and the merge that fills
// missing keys without ever overwriting values already present.
package namespace
