package instrumentation

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func auditRecord() *SetupRunRecord {
	return &SetupRunRecord{
		RunID:     "run-123",
		Tool:      "connect_to_salesforce",
		Alias:     "mcp-org",
		Steps:     3,
		StartTime: time.Now(),
		Duration:  45 * time.Second,
		Success:   true,
		Username:  "user@example.com",
	}
}

func TestSetupRunRecordStatus(t *testing.T) {
	record := auditRecord()
	if got := record.Status(); got != StatusSuccess {
		t.Errorf("Status() = %q, want %q", got, StatusSuccess)
	}
	record.Success = false
	if got := record.Status(); got != StatusError {
		t.Errorf("Status() = %q, want %q", got, StatusError)
	}
}

func TestAuditLoggerLogSetupRun(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	audit := NewAuditLogger(logger, AuditLoggingConfig{Enabled: true})
	audit.LogSetupRun(auditRecord())

	out := buf.String()
	if !strings.Contains(out, "setup run finished") {
		t.Errorf("audit entry missing message: %s", out)
	}
	if !strings.Contains(out, "run-123") {
		t.Errorf("audit entry missing run id: %s", out)
	}
	if strings.Contains(out, "user@example.com") {
		t.Errorf("audit entry leaked username without PII opt-in: %s", out)
	}
}

func TestAuditLoggerIncludePII(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	audit := NewAuditLogger(logger, AuditLoggingConfig{Enabled: true, IncludePII: true})
	audit.LogSetupRun(auditRecord())

	if !strings.Contains(buf.String(), "user@example.com") {
		t.Errorf("audit entry missing username with PII enabled: %s", buf.String())
	}
}

func TestAuditLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	audit := NewAuditLogger(logger, AuditLoggingConfig{Enabled: false})
	audit.LogSetupRun(auditRecord())

	if buf.Len() != 0 {
		t.Errorf("disabled audit logger wrote output: %s", buf.String())
	}
}
