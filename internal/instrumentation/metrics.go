package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency.
const (
	attrStatus = "status"
	attrResult = "result"
	attrTool   = "tool"
	attrStep   = "step"
)

// Metrics provides methods for recording observability metrics. The zero
// value is a no-op recorder, so callers never need nil checks per metric.
type Metrics struct {
	// MCP tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram

	// Setup wizard metrics
	setupRunsTotal    metric.Int64Counter
	setupStepDuration metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		// Tool runs block on browser logins, so the buckets reach minutes.
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1.0, 5.0, 15.0, 30.0, 60.0, 120.0, 300.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	m.setupRunsTotal, err = meter.Int64Counter(
		"setup_runs_total",
		metric.WithDescription("Total number of Salesforce setup wizard runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create setup_runs_total counter: %w", err)
	}

	m.setupStepDuration, err = meter.Float64Histogram(
		"setup_step_duration_seconds",
		metric.WithDescription("Setup wizard step duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1.0, 5.0, 15.0, 30.0, 60.0, 120.0, 300.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create setup_step_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordToolInvocation records an MCP tool invocation with tool name, status,
// and duration. Status should be "success" or "error".
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordSetupRun records one completed setup wizard run.
// Result should be "success" or "error".
func (m *Metrics) RecordSetupRun(ctx context.Context, result string) {
	if m.setupRunsTotal == nil {
		return // Instrumentation not initialized
	}

	m.setupRunsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, result),
	))
}

// RecordSetupStep records a single wizard step observation. The step label is
// the fixed step name, status is the step's final state. This satisfies the
// wizard's StepRecorder interface.
func (m *Metrics) RecordSetupStep(ctx context.Context, step, status string, duration time.Duration) {
	if m.setupStepDuration == nil {
		return // Instrumentation not initialized
	}

	m.setupStepDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(attrStep, step),
		attribute.String(attrStatus, status),
	))
}
