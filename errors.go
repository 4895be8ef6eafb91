package threeofnine

import "errors"

var (
	// ErrNotFound is returned when no symbol is found in the scanned image.
	ErrNotFound = errors.New("barcode not found")

	// ErrFormat is returned when a bar pattern is not a valid Code 39
	// character.
	ErrFormat = errors.New("format error")

	// ErrWriter is returned when a value cannot be encoded strictly.
	ErrWriter = errors.New("writer error")
)
