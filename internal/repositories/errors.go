package repositories

import "errors"

// ErrNotFound is returned (wrapped) when a lookup matches no record, so
// callers can distinguish absence from a store failure.
var ErrNotFound = errors.New("record not found")
