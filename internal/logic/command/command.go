// Package command holds one type per user intent. Each command validates its
// preconditions against the model, applies its change and reports a message;
// commands are the only code that mutates a model.
package command

import (
	"errors"
	"fmt"

	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/pkg/pagination"
)

// ErrNilModel is returned when a command is executed without a model.
var ErrNilModel = errors.New("command: model must not be nil")

// View names the listing a front end should show after a command.
type View int

const (
	ViewNone View = iota
	ViewPatients
	ViewAppointments
	ViewVaccinations
	ViewKeywords
)

func (v View) String() string {
	switch v {
	case ViewPatients:
		return "patients"
	case ViewAppointments:
		return "appointments"
	case ViewVaccinations:
		return "vaccinations"
	case ViewKeywords:
		return "keywords"
	default:
		return "none"
	}
}

// Result is what a command reports back to its caller.
type Result struct {
	Message string
	// Mutated is set when the model changed and must be persisted.
	Mutated bool
	// Exit asks the front end to stop reading commands.
	Exit bool
	View View
	Page pagination.Params
}

// Command is a parsed user intent ready to run against a model.
type Command interface {
	Execute(m *model.Model) (Result, error)
}

// Error is a command failure with a message meant for the user.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func fail(msg string, err error) error {
	return &Error{Message: msg, Err: err}
}

func failf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func mutated(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), Mutated: true}
}

func firstPage() pagination.Params {
	return pagination.FromPage(1, pagination.DefaultLimit)
}

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
