package ir

import "errors"

var (
	// ErrDuplicateKey is returned when constructing an object with a
	// repeated key. Objects never silently overwrite.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnsupportedValue is returned by the bridges when a value outside
	// the closed Node variant is supplied.
	ErrUnsupportedValue = errors.New("unsupported value kind")
)
