package store

import "errors"

// ErrNotFound is returned when no row matches a lookup or delete.
var ErrNotFound = errors.New("store: not found")
