package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrUserAborted reports that the user backed out of an interactive
// prompt rather than submitting it.
var ErrUserAborted = errors.New("user aborted")

// NormalizeAbort maps the ways a prompt can be abandoned — Esc or
// Ctrl+C inside a huh form, Ctrl+D closing stdin, a cancelled
// context — onto ErrUserAborted, so callers branch on one sentinel
// instead of three error values.
func NormalizeAbort(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) {
		return ErrUserAborted
	}
	return err
}

// IsAbort reports whether err represents a user abort.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
