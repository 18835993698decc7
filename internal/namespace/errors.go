package namespace

import "errors"

var (
	// ErrInvalidValue indicates a recognized key holds a value of the wrong kind.
	ErrInvalidValue = errors.New("invalid value for recognized key")
	// ErrUnknownKey indicates a lookup for a key absent from the namespace.
	ErrUnknownKey = errors.New("unknown key")
)
