package repositories

import "errors"

// ErrNotFound is returned when a row does not exist. Services translate it
// into the caller-visible error for the entity they were resolving.
var ErrNotFound = errors.New("not found")
