package renders

import "errors"

// ErrNotFound indicates a render record was not found.
var ErrNotFound = errors.New("not found")
