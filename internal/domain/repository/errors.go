package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches an id or unique field.
	// It is an expected outcome, not a failure.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned by backends that enforce unique fields
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrBackendUnavailable wraps any failure of the underlying persistence
	ErrBackendUnavailable = errors.New("storage backend unavailable")
)
