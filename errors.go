package foodle

import "errors"

var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingSecret is returned when a required secret setting is empty
	ErrMissingSecret = errors.New("missing secret")
	// ErrUnsupportedDatabase is returned when a database URL scheme is not supported
	ErrUnsupportedDatabase = errors.New("unsupported database")
)
