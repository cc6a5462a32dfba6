package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/vms/vms/internal/logic/command"
)

type ctxKey int

const commandIDKey ctxKey = iota

// CommandID assigns a fresh uuid to every command unless the context already
// carries one.
func CommandID() MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, line string) (command.Result, error) {
			if CommandIDFrom(ctx) == "" {
				ctx = WithCommandID(ctx, uuid.NewString())
			}
			return next(ctx, line)
		}
	}
}

func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKey, id)
}

// CommandIDFrom returns the id stored by CommandID, or "".
func CommandIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(commandIDKey).(string)
	return id
}
