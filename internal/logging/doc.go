// Package logging provides structured logging helpers for the
// connect-to-salesforce-mcp application.
//
// It defines the canonical slog attribute keys used across the codebase and
// an Initialize function that installs the process-wide slog handler. All log
// output goes to stderr: on the stdio MCP transport, stdout carries protocol
// frames and must stay clean, so the diagnostic channel lives on stderr.
package logging
