package storage

import (
	"errors"
	"fmt"
)

// ErrIO wraps every failure to read, decode or write a data file.
var ErrIO = errors.New("storage: i/o failure")

// IllegalValueError reports a stored record that fails validation.
type IllegalValueError struct {
	File   string
	Field  string
	Reason string
	Err    error
}

func (e *IllegalValueError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Reason)
}

func (e *IllegalValueError) Unwrap() error { return e.Err }

// DuplicateIDError reports two records sharing an identity.
type DuplicateIDError struct {
	File string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: duplicate id %s", e.File, e.ID)
}

func illegal(file, field string, err error) *IllegalValueError {
	return &IllegalValueError{File: file, Field: field, Reason: err.Error(), Err: err}
}

func ioError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
}
