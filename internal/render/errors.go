package render

import "errors"

var (
	// ErrInvalidInput indicates the request body could not be parsed or
	// validated into resume data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCompile indicates the LaTeX engine failed or its output could not
	// be collected. Timeouts are reported as compile failures too.
	ErrCompile = errors.New("latex compilation failed")

	// ErrPersist indicates the generated PDF could not be written to the
	// output location.
	ErrPersist = errors.New("persist output failed")
)
