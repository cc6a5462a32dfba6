package middleware

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vms/vms/internal/logic/command"
)

func echoHandler(ctx context.Context, line string) (command.Result, error) {
	return command.Result{Message: line}, nil
}

func TestSanitize_StripsControlCharacters(t *testing.T) {
	h := Sanitize(0, zerolog.Nop())(echoHandler)
	res, err := h(context.Background(), "  patient\tlist\x1b 2 \r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "patient list 2" {
		t.Errorf("expected sanitized line, got %q", res.Message)
	}
}

func TestSanitize_RejectsLongLines(t *testing.T) {
	h := Sanitize(10, zerolog.Nop())(echoHandler)
	_, err := h(context.Background(), strings.Repeat("a", 11))
	if !errors.Is(err, ErrLineTooLong) {
		t.Errorf("expected ErrLineTooLong, got %v", err)
	}
	if _, err := h(context.Background(), strings.Repeat("a", 10)); err != nil {
		t.Errorf("a line at the limit should pass: %v", err)
	}
}

func TestSanitize_RejectsNullByte(t *testing.T) {
	h := Sanitize(0, zerolog.Nop())(echoHandler)
	if _, err := h(context.Background(), "patient\x00list"); !errors.Is(err, ErrNullByte) {
		t.Errorf("expected ErrNullByte, got %v", err)
	}
}

func TestSanitizeString(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"abc":        "abc",
		"a\x07b":     "ab",
		" a\tb\nc  ": "a b c",
		"vax (dose)": "vax (dose)",
	}
	for in, want := range cases {
		if got := SanitizeString(in); got != want {
			t.Errorf("SanitizeString(%q) = %q, want %q", in, got, want)
		}
	}
}
