// Package logic runs user input end to end: parse, execute against the
// model, and persist when the model changed.
package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vms/vms/internal/logic/command"
	"github.com/vms/vms/internal/logic/parser"
	"github.com/vms/vms/internal/model"
	"github.com/vms/vms/internal/platform/middleware"
)

// ErrSave is returned when a command succeeded but its result could not be
// persisted. The in-memory model keeps the change.
var ErrSave = errors.New("could not save data files")

// Saver persists a model.
type Saver interface {
	Save(m *model.Model) error
}

// Manager owns the session model and the command pipeline.
type Manager struct {
	model   *model.Model
	parser  *parser.Parser
	saver   Saver
	handler middleware.HandlerFunc
}

// NewManager builds the pipeline. saver may be nil, in which case changes are
// kept in memory only.
func NewManager(m *model.Model, saver Saver, pageSize int, logger zerolog.Logger) *Manager {
	if m == nil {
		m = model.New()
	}
	lm := &Manager{
		model:  m,
		parser: parser.New(m.Keywords(), pageSize),
		saver:  saver,
	}
	lm.handler = middleware.Chain(lm.handle,
		middleware.CommandID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Sanitize(middleware.DefaultMaxLineLength, logger),
	)
	return lm
}

func (lm *Manager) Model() *model.Model { return lm.model }

// Execute runs one line of input.
func (lm *Manager) Execute(ctx context.Context, line string) (command.Result, error) {
	return lm.handler(ctx, line)
}

func (lm *Manager) handle(ctx context.Context, line string) (command.Result, error) {
	if err := ctx.Err(); err != nil {
		return command.Result{}, err
	}
	cmd, err := lm.parser.Parse(line)
	if err != nil {
		return command.Result{}, err
	}
	res, err := cmd.Execute(lm.model)
	if err != nil {
		return command.Result{}, err
	}
	if res.Mutated && lm.saver != nil {
		if err := lm.saver.Save(lm.model); err != nil {
			return res, fmt.Errorf("%w: %w", ErrSave, err)
		}
	}
	return res, nil
}
