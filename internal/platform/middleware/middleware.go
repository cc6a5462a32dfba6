// Package middleware wraps command handling with cross-cutting steps: a
// per-command id, structured logging and panic recovery.
package middleware

import (
	"context"
	"strings"

	"github.com/vms/vms/internal/logic/command"
)

// HandlerFunc handles one line of user input.
type HandlerFunc func(ctx context.Context, line string) (command.Result, error)

// MiddlewareFunc decorates a HandlerFunc.
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

// Chain wraps h so that the first middleware runs outermost.
func Chain(h HandlerFunc, mws ...MiddlewareFunc) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// commandName returns the leading command words of line, without arguments,
// so that logs never carry patient data.
func commandName(line string) string {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return ""
	case len(fields) == 1:
		return strings.ToLower(fields[0])
	default:
		return strings.ToLower(fields[0] + " " + fields[1])
	}
}
