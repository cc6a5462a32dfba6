package parser

import (
	"errors"
	"fmt"

	"github.com/vms/vms/internal/logic/command"
	"github.com/vms/vms/internal/platform/apperr"
)

// ParseError is returned for any input the parser rejects. Message is meant
// for the user.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(msg string) *ParseError {
	return &ParseError{Message: msg}
}

// invalidFormat reports a command whose shape does not match its usage.
func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: fmt.Sprintf(command.MessageInvalidCommandFormat, usage)}
}

// wrap turns a value-object error into a ParseError carrying its constraint.
func wrap(err error) *ParseError {
	var fe *apperr.FormatError
	if errors.As(err, &fe) {
		return &ParseError{Message: fe.Constraint, Err: err}
	}
	return &ParseError{Message: err.Error(), Err: err}
}
