// Package server holds the shared runtime state for the MCP server.
//
// ServerContext wires the Salesforce CLI client, the setup wizard, and the
// optional instrumentation recorders together so that tool handlers can reach
// them through a single value. The package also provides the HTTP sidecars
// used when the server runs over a network transport:
//
//   - HealthChecker serves /healthz, /readyz and /healthz/detailed for
//     Kubernetes probes.
//   - MetricsServer exposes Prometheus metrics on a dedicated port, isolated
//     from the MCP traffic.
//
// When the server runs over stdio neither sidecar is started.
package server
