package exec

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRealCommander_Run(t *testing.T) {
	commander := &RealCommander{}
	ctx := context.Background()

	result, err := commander.Run(ctx, ".", "echo", "hello")
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if result.Stdout != "hello\n" {
		t.Errorf("expected 'hello\\n' on stdout, got: %q", result.Stdout)
	}
	if result.Stderr != "" {
		t.Errorf("expected empty stderr, got: %q", result.Stderr)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestRealCommander_Run_NonZeroExit(t *testing.T) {
	commander := &RealCommander{}
	ctx := context.Background()

	result, err := commander.Run(ctx, ".", "sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit, got nil")
	}
	if IsNotFound(err) {
		t.Error("non-zero exit must not be treated as a missing binary")
	}
	if !strings.Contains(result.Stderr, "oops") {
		t.Errorf("expected stderr to contain 'oops', got: %q", result.Stderr)
	}
	if result.ExitCode != 3 {
		t.Errorf("expected exit code 3, got: %d", result.ExitCode)
	}
}

func TestRealCommander_Run_MissingBinary(t *testing.T) {
	commander := &RealCommander{}
	ctx := context.Background()

	_, err := commander.Run(ctx, ".", "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound to report true, got false for: %v", err)
	}
}

func TestRealCommander_Run_WithDir(t *testing.T) {
	commander := &RealCommander{}
	ctx := context.Background()
	dir := t.TempDir()

	result, err := commander.Run(ctx, dir, "pwd")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(result.Stdout, dir) {
		t.Errorf("expected pwd output to contain %q, got: %q", dir, result.Stdout)
	}
}

func TestRealCommander_Run_WithContextCancellation(t *testing.T) {
	commander := &RealCommander{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := commander.Run(ctx, ".", "sleep", "1")
	if err == nil {
		t.Error("expected error for cancelled context, got nil")
	}
}

func TestMockCommander_WasCalled(t *testing.T) {
	mock := NewMockCommander()
	ctx := context.Background()

	mock.Run(ctx, "/project", "git", "status")

	if !mock.WasCalled("git", "status") {
		t.Error("expected WasCalled to return true for 'git status'")
	}
	if mock.WasCalled("git", "log") {
		t.Error("expected WasCalled to return false for 'git log'")
	}
}

func TestMockCommander_PresetResponse(t *testing.T) {
	mock := NewMockCommander()
	expectedErr := errors.New("exit status 128")
	mock.SetResponse("git", []string{"push"}, Result{Stderr: "fatal: no upstream", ExitCode: 128}, expectedErr)

	ctx := context.Background()
	result, err := mock.Run(ctx, ".", "git", "push")

	if err != expectedErr {
		t.Errorf("expected error %v, got: %v", expectedErr, err)
	}
	if result.Stderr != "fatal: no upstream" {
		t.Errorf("expected preset stderr, got: %q", result.Stderr)
	}

	call := mock.LastCall()
	if call == nil {
		t.Fatal("expected call to be recorded")
	}
	if call.Command != "git" || len(call.Args) != 1 || call.Args[0] != "push" {
		t.Errorf("unexpected recorded call: %+v", call)
	}
}

func TestMockCommander_NoResponse(t *testing.T) {
	mock := NewMockCommander()
	ctx := context.Background()

	result, err := mock.Run(ctx, ".", "unknown", "cmd")

	if err != nil {
		t.Errorf("expected no error for unset response, got: %v", err)
	}
	if result.Stdout != "" || result.Stderr != "" {
		t.Errorf("expected zero result for unset response, got: %+v", result)
	}
}

func TestMockCommander_Reset(t *testing.T) {
	mock := NewMockCommander()
	ctx := context.Background()

	mock.Run(ctx, ".", "echo", "hello")
	mock.Run(ctx, ".", "echo", "world")

	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls before reset, got %d", mock.CallCount())
	}

	mock.Reset()

	if mock.CallCount() != 0 {
		t.Errorf("expected 0 calls after reset, got %d", mock.CallCount())
	}
	if len(mock.Responses) != 0 {
		t.Error("expected responses to be cleared")
	}
}

func TestMockCommander_GetCall(t *testing.T) {
	mock := NewMockCommander()
	ctx := context.Background()

	mock.Run(ctx, "/a", "git", "init")
	mock.Run(ctx, "/b", "git", "add", "-A")

	first := mock.GetCall(0)
	if first == nil || first.Dir != "/a" {
		t.Errorf("unexpected first call: %+v", first)
	}
	if mock.GetCall(2) != nil {
		t.Error("expected nil for out-of-range call index")
	}
}
