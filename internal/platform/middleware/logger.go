package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vms/vms/internal/logic/command"
)

func Logger(logger zerolog.Logger) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, line string) (command.Result, error) {
			start := time.Now()

			res, err := next(ctx, line)

			evt := logger.Info()
			if err != nil {
				evt = logger.Warn().Err(err)
			}

			evt.
				Str("command_id", CommandIDFrom(ctx)).
				Str("command", commandName(line)).
				Bool("mutated", res.Mutated).
				Str("view", res.View.String()).
				Dur("latency", time.Since(start)).
				Msg("command")

			return res, err
		}
	}
}
