package instrumentation

import (
	"log/slog"
	"time"
)

// SetupRunRecord captures one setup wizard run for audit logging. It is the
// durable operator-facing trail of who connected which org, when, and how it
// went.
//
// The Username field contains PII; it is only emitted when the audit logger
// is configured with IncludePII.
type SetupRunRecord struct {
	// RunID is the unique identifier of the wizard run.
	RunID string

	// Tool is the MCP tool name that triggered the run.
	Tool string

	// Alias is the org alias targeted by the run.
	Alias string

	// Steps is the number of steps the run executed.
	Steps int

	// Execution details
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	// Username is the authenticated Salesforce username, set on success.
	Username string
}

// Status returns "success" or "error" based on the Success field.
func (r *SetupRunRecord) Status() string {
	if r.Success {
		return StatusSuccess
	}
	return StatusError
}

// AuditLogger writes structured audit records for setup runs.
type AuditLogger struct {
	logger *slog.Logger
	config AuditLoggingConfig
}

// NewAuditLogger creates an AuditLogger with the given configuration.
// If logger is nil, slog.Default() is used.
func NewAuditLogger(logger *slog.Logger, config AuditLoggingConfig) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
		config: config,
	}
}

// Enabled reports whether audit logging is active.
func (a *AuditLogger) Enabled() bool {
	return a != nil && a.config.Enabled
}

// LogSetupRun emits one audit record for a finished wizard run. No-op when
// audit logging is disabled.
func (a *AuditLogger) LogSetupRun(record *SetupRunRecord) {
	if !a.Enabled() {
		return
	}

	attrs := []any{
		slog.String("audit", "setup_run"),
		slog.String("run_id", record.RunID),
		slog.String("tool", record.Tool),
		slog.String("alias", record.Alias),
		slog.Int("steps", record.Steps),
		slog.Time("start_time", record.StartTime),
		slog.Duration("duration", record.Duration),
		slog.String("status", record.Status()),
	}
	if record.Error != "" {
		attrs = append(attrs, slog.String("error", record.Error))
	}
	if a.config.IncludePII && record.Username != "" {
		attrs = append(attrs, slog.String("username", record.Username))
	}

	a.logger.Info("setup run finished", attrs...)
}
