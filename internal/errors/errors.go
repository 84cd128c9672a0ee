// Package errors defines the typed errors shared across gitstart.
// Sentinel errors allow callers to branch on failure class with errors.Is
// while still wrapping contextual detail with fmt.Errorf and %w.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrGitNotInstalled indicates the git binary could not be found on PATH.
	ErrGitNotInstalled = errors.New("git is not installed")

	// ErrNoWorkspace indicates a repository operation was attempted before
	// a project directory was selected.
	ErrNoWorkspace = errors.New("no workspace selected")

	// ErrInvalidDirectory indicates the given path does not exist or is not
	// a directory.
	ErrInvalidDirectory = errors.New("invalid directory")

	// ErrEmptyField indicates a required input was empty or blank.
	ErrEmptyField = errors.New("required field is empty")

	// ErrInvalidRemoteURL indicates the remote URL does not match the
	// accepted GitHub URL patterns.
	ErrInvalidRemoteURL = errors.New("invalid GitHub repository URL")

	// ErrRemoteExists indicates a remote with the configured name is
	// already registered in the repository.
	ErrRemoteExists = errors.New("remote already exists")

	// ErrUnknownTemplate indicates an ignore template key that is neither
	// built in nor provided by configuration.
	ErrUnknownTemplate = errors.New("unknown ignore template")
)

// CommandError reports a git invocation that exited non-zero.
// Stderr carries the tool's own output verbatim for display to the user.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %v: %v: %s", e.Args, e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %v: %v", e.Args, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err belongs to the class of input errors
// raised before any external command is issued.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyField) ||
		errors.Is(err, ErrInvalidRemoteURL) ||
		errors.Is(err, ErrInvalidDirectory) ||
		errors.Is(err, ErrUnknownTemplate)
}
