package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/vms/vms/internal/logic/command"
)

// DefaultMaxLineLength bounds a single command line.
const DefaultMaxLineLength = 4096

var (
	ErrLineTooLong = errors.New("command is too long")
	ErrNullByte    = errors.New("command contains a null byte")
)

// Sanitize rejects oversized lines and lines with null bytes, and strips the
// remaining control characters before the command is parsed. A non-positive
// maxLen uses DefaultMaxLineLength.
func Sanitize(maxLen int, logger zerolog.Logger) MiddlewareFunc {
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, line string) (command.Result, error) {
			if len(line) > maxLen {
				logger.Warn().
					Str("command_id", CommandIDFrom(ctx)).
					Int("length", len(line)).
					Msg("command rejected: too long")
				return command.Result{}, fmt.Errorf("%w: %d bytes, limit %d", ErrLineTooLong, len(line), maxLen)
			}
			if strings.ContainsRune(line, '\x00') {
				return command.Result{}, ErrNullByte
			}
			return next(ctx, SanitizeString(line))
		}
	}
}

// SanitizeString drops control characters, turning tabs and line breaks into
// spaces, and trims surrounding whitespace.
func SanitizeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
