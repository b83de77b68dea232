package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"syscall"

	"word-mcp-launcher/core/server"
)

// Exit codes used when the server never ran.
const (
	ExitFailure       = 1
	ExitConfig        = 78
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

var (
	// ErrBinaryNotFound is returned when the server executable is not on PATH.
	ErrBinaryNotFound = errors.New("server executable not found")
	// ErrNotExecutable is returned when the executable exists but cannot be run.
	ErrNotExecutable = errors.New("server executable is not executable")
	// ErrInvalidMode is returned for an unknown launch mode.
	ErrInvalidMode = errors.New("invalid launch mode")
	// ErrUnsupported is returned when exec mode is not available on this OS.
	ErrUnsupported = errors.New("launch mode not supported on this platform")
)

// ExitError carries the exit status the launcher must terminate with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by this package to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, server.ErrInvalidPort), errors.Is(err, ErrInvalidMode):
		return ExitConfig
	case errors.Is(err, ErrBinaryNotFound):
		return ExitNotFound
	case errors.Is(err, ErrNotExecutable):
		return ExitNotExecutable
	default:
		return ExitFailure
	}
}

// waitStatus derives the exit status of a finished child from Wait's error.
// A child killed by signal N reports 128+N, like a shell.
func waitStatus(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}

	return ExitFailure
}

// startStatus classifies a failure to start the child.
func startStatus(err error) int {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist), errors.Is(err, ErrBinaryNotFound):
		return ExitNotFound
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM),
		errors.Is(err, syscall.ENOEXEC), errors.Is(err, ErrNotExecutable):
		return ExitNotExecutable
	default:
		return ExitFailure
	}
}
