// Package instrumentation provides OpenTelemetry-based observability for the
// connect-to-salesforce-mcp server.
//
// The Provider wires up metrics (prometheus, otlp or stdout exporters) and
// optional tracing. Metrics cover MCP tool invocations, setup wizard runs and
// individual wizard step durations. The AuditLogger emits a structured audit
// record per setup run; usernames are only included when PII logging is
// explicitly enabled.
//
// Instrumentation is optional: with Enabled=false every recorder is a no-op,
// which is the default on the stdio transport.
package instrumentation
