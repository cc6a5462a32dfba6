package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/vms/vms/internal/logic/command"
)

// ErrPanic is returned in place of a panic raised while handling a command.
var ErrPanic = errors.New("internal error while executing command")

func Recovery(logger zerolog.Logger) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, line string) (res command.Result, err error) {
			defer func() {
				if r := recover(); r != nil {
					var stack [4096]byte
					n := runtime.Stack(stack[:], false)

					logger.Error().
						Str("command_id", CommandIDFrom(ctx)).
						Str("command", commandName(line)).
						Str("panic", fmt.Sprintf("%v", r)).
						Str("stack", string(stack[:n])).
						Msg("panic recovered")

					res, err = command.Result{}, ErrPanic
				}
			}()
			return next(ctx, line)
		}
	}
}
