// Package exec provides interfaces and implementations for command execution.
// This abstraction allows for dependency injection and testing of components
// that shell out to external tools.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result captures the output of a single external command invocation.
// Stdout and Stderr are captured separately so failures can surface the
// tool's own error text verbatim.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Commander defines the interface for executing commands.
// Implementations can provide real command execution or mock behavior for testing.
type Commander interface {
	// Run executes a command in the specified directory with the given
	// arguments. An empty dir runs in the process's current directory.
	// A non-zero exit returns the Result alongside a non-nil error; a
	// launch-level failure (binary missing) returns a zero Result.
	Run(ctx context.Context, dir string, command string, args ...string) (Result, error)
}

// RealCommander executes commands using the real operating system.
// This is the production implementation that actually runs commands.
type RealCommander struct{}

// Run executes the command using exec.CommandContext with separate
// stdout and stderr buffers.
func (c *RealCommander) Run(ctx context.Context, dir string, command string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	return result, err
}

// IsNotFound reports whether err indicates the executable could not be
// launched at all, as opposed to running and exiting non-zero.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
