// Package setup implements the Salesforce setup wizard.
//
// The wizard runs a fixed, linear sequence of steps against the Salesforce
// CLI client: check the CLI is installed, install it if missing, start the
// browser-based login flow, and verify the resulting org connection. Each
// step is recorded as it runs; the first failure halts the sequence. There is
// no retry, no persistence, and no resumption: a failed run is restarted
// from the beginning by the caller.
//
// FormatResult renders a finished run as the single text block returned to
// the MCP caller.
package setup
