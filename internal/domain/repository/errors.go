package repository

import "errors"

// ErrNotFound is returned by all repositories when a row does not exist,
// so callers can tell a missing entity apart from a store fault.
var ErrNotFound = errors.New("not found")
