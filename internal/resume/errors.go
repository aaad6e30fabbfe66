package resume

import "errors"

var (
	// ErrNotFound indicates no stored resume content for the user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
