package server

import (
	"context"
	"testing"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/config"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/instrumentation"
)

func TestNewServerContext(t *testing.T) {
	cfg := config.Default()

	sc, err := NewServerContext(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if sc.Client() == nil {
		t.Error("Client() = nil, want initialized client")
	}
	if sc.Wizard() == nil {
		t.Error("Wizard() = nil, want initialized wizard")
	}
	if got := sc.Config().OrgAlias; got != cfg.OrgAlias {
		t.Errorf("Config().OrgAlias = %q, want %q", got, cfg.OrgAlias)
	}
	if sc.IsShutdown() {
		t.Error("IsShutdown() = true for fresh context")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("Context() not cancelled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestServerContext_SetMetrics(t *testing.T) {
	sc, err := NewServerContext(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if sc.Metrics() != nil {
		t.Error("Metrics() non-nil before SetMetrics()")
	}

	m := &instrumentation.Metrics{}
	sc.SetMetrics(m)
	if sc.Metrics() != m {
		t.Error("Metrics() did not return the recorder set")
	}
}

func TestServerContext_SetAuditLogger(t *testing.T) {
	sc, err := NewServerContext(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() non-nil before SetAuditLogger()")
	}

	audit := instrumentation.NewAuditLogger(nil, instrumentation.AuditLoggingConfig{Enabled: true})
	sc.SetAuditLogger(audit)
	if sc.AuditLogger() != audit {
		t.Error("AuditLogger() did not return the logger set")
	}
}
