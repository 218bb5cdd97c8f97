package shell

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/logging"
)

// Result holds the outcome of a shell command invocation.
type Result struct {
	// ExitCode is the process exit status. Zero means success.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string
}

// Combined returns stdout followed by stderr as a single string.
func (r Result) Combined() string {
	return r.Stdout + r.Stderr
}

// Runner executes a command line through the platform shell.
//
// A non-zero exit status is not an error: it is reported through
// Result.ExitCode. The returned error is non-nil only when the command could
// not be executed at all (shell missing, context cancelled before start).
type Runner interface {
	Run(ctx context.Context, command string) (Result, error)
}

// ExecRunner runs commands through the operating system shell via os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run executes the command line with cmd /C on Windows and sh -c elsewhere.
// It blocks until the process exits; the only cancellation is the context.
func (ExecRunner) Run(ctx context.Context, command string) (Result, error) {
	name, args := shellInvocation(command)

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			err = nil
		}
	}

	slog.Debug("shell command finished",
		logging.Command(command),
		slog.Int("exit_code", res.ExitCode),
		slog.Duration(logging.KeyDuration, time.Since(start)),
		logging.Err(err),
	)

	return res, err
}

// shellInvocation returns the shell binary and arguments for the platform.
func shellInvocation(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// nullDevice is the platform's discard sink for shell redirection.
func nullDevice() string {
	if runtime.GOOS == "windows" {
		return "NUL"
	}
	return "/dev/null"
}

// SuppressOutput appends redirection that discards stdout and stderr.
func SuppressOutput(command string) string {
	return command + " > " + nullDevice() + " 2>&1"
}

// SuppressStderr appends redirection that discards only stderr, so warnings
// the external tool prints there stay out of the captured stream.
func SuppressStderr(command string) string {
	return command + " 2> " + nullDevice()
}
