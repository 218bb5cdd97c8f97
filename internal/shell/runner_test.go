package shell

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestExecRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test commands assume a POSIX shell")
	}

	tests := []struct {
		name         string
		command      string
		wantExitCode int
		wantStdout   string
		wantStderr   string
	}{
		{
			name:         "successful command captures stdout",
			command:      "echo hello",
			wantExitCode: 0,
			wantStdout:   "hello\n",
		},
		{
			name:         "stderr captured separately",
			command:      "echo oops 1>&2",
			wantExitCode: 0,
			wantStderr:   "oops\n",
		},
		{
			name:         "non-zero exit is not an error",
			command:      "exit 3",
			wantExitCode: 3,
		},
	}

	runner := ExecRunner{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runner.Run(context.Background(), tt.command)
			if err != nil {
				t.Fatalf("Run(%q) unexpected error = %v", tt.command, err)
			}
			if res.ExitCode != tt.wantExitCode {
				t.Errorf("Run(%q) exit code = %d, want %d", tt.command, res.ExitCode, tt.wantExitCode)
			}
			if tt.wantStdout != "" && res.Stdout != tt.wantStdout {
				t.Errorf("Run(%q) stdout = %q, want %q", tt.command, res.Stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && res.Stderr != tt.wantStderr {
				t.Errorf("Run(%q) stderr = %q, want %q", tt.command, res.Stderr, tt.wantStderr)
			}
		})
	}
}

func TestResult_Combined(t *testing.T) {
	res := Result{Stdout: "out", Stderr: "err"}
	if got := res.Combined(); got != "outerr" {
		t.Errorf("Combined() = %q, want %q", got, "outerr")
	}
}

func TestSuppressOutput(t *testing.T) {
	got := SuppressOutput("sf org login web")
	if !strings.HasPrefix(got, "sf org login web > ") {
		t.Errorf("SuppressOutput() = %q, want command followed by redirection", got)
	}
	if !strings.HasSuffix(got, "2>&1") {
		t.Errorf("SuppressOutput() = %q, want stderr folded into stdout", got)
	}
}

func TestSuppressStderr(t *testing.T) {
	got := SuppressStderr("sf org display --json")
	if !strings.Contains(got, "2> ") {
		t.Errorf("SuppressStderr() = %q, want stderr redirection", got)
	}
	if strings.Contains(got, "2>&1") {
		t.Errorf("SuppressStderr() = %q, must not discard stdout", got)
	}
}
