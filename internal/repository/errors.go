package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document, including
	// reset-credential consumption against an expired or already-used token.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateEmail is returned when a create violates the unique
	// email index.
	ErrDuplicateEmail = errors.New("email already registered")
)
