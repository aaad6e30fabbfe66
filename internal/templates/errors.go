package templates

import "errors"

var (
	// ErrNotFound indicates the requested template does not exist.
	ErrNotFound = errors.New("template not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidName indicates a template name with path traversal or other
	// characters unsafe to use as a directory segment.
	ErrInvalidName = errors.New("invalid template name")
)
