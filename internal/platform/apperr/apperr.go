// Package apperr holds the error types shared by the domain value objects.
package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by every FormatError.
var ErrInvalidFormat = errors.New("invalid format")

// FormatError reports a value that does not satisfy the constraint of its
// type. Constraint is the message shown to the user.
type FormatError struct {
	Kind       string
	Value      string
	Constraint string
}

func (e *FormatError) Error() string {
	return e.Constraint
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// NewFormatError builds a FormatError for the named value kind.
func NewFormatError(kind, value, constraint string) *FormatError {
	return &FormatError{Kind: kind, Value: value, Constraint: constraint}
}

// Describe renders the error with the rejected value, for logs.
func (e *FormatError) Describe() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Value, e.Constraint)
}
