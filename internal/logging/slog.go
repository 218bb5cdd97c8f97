package logging

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Supported handler formats for Initialize.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatTint = "tint"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyStep      = "step"
	KeyAlias     = "alias"
	KeyCommand   = "command"
	KeyDuration  = "duration"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyTool      = "tool"
	KeyRunID     = "run_id"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Initialize installs the process-wide slog handler. The format selects the
// handler implementation: "json" for deployments, "text" for plain output,
// "tint" for colorized terminal output. Everything goes to stderr.
func Initialize(format string, level slog.Level) error {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case FormatText:
		handler = slog.NewTextHandler(os.Stderr, opts)
	case FormatTint:
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	default:
		return fmt.Errorf("unknown log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithRunID returns a logger with the setup run ID attribute set.
func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	return logger.With(slog.String(KeyRunID, runID))
}

// Step returns a slog attribute for a setup step name.
func Step(name string) slog.Attr {
	return slog.String(KeyStep, name)
}

// Alias returns a slog attribute for the org alias.
func Alias(alias string) slog.Attr {
	return slog.String(KeyAlias, alias)
}

// Command returns a slog attribute for an external command line.
func Command(cmd string) slog.Attr {
	return slog.String(KeyCommand, cmd)
}

// Tool returns a slog attribute for the MCP tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from
// output, so Err(maybeNilErr) is always safe to pass.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}
