package errs

import "errors"

// Category markers. Domain and usecase sentinels are marked with one of these
// so the HTTP layer can map them to a status without knowing every sentinel.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrTransient  = errors.New("transient failure")
)

// NewValidation returns a sentinel already marked as a validation error.
func NewValidation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func NewNotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func NewConflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}
