package store

import "errors"

// Sentinel errors returned by the store and storage backends. All of
// them are local, recoverable failures; nothing here is fatal.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
)
