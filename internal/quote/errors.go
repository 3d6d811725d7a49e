package quote

import "errors"

// ErrNotFound is returned when no quote has the requested id.
var ErrNotFound = errors.New("quote not found")
