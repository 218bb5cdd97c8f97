package server

import (
	"context"
	"sync"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/config"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/instrumentation"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/setup"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/sfcli"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/shell"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	cfg         config.Config
	client      *sfcli.Client
	wizard      *setup.Wizard
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context. The Salesforce CLI client
// and wizard are built from the given configuration and run commands through
// the real shell.
func NewServerContext(ctx context.Context, cfg config.Config) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	client := sfcli.NewClient(shell.ExecRunner{}, cfg)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		cfg:      cfg,
		client:   client,
		wizard:   setup.NewWizard(client),
		shutdown: false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the Salesforce configuration the server was started with.
func (sc *ServerContext) Config() config.Config {
	return sc.cfg
}

// Client returns the Salesforce CLI client.
func (sc *ServerContext) Client() *sfcli.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.client
}

// SetClient replaces the Salesforce CLI client and rebuilds the wizard on
// top of it. Used by tests to substitute a scripted command runner.
func (sc *ServerContext) SetClient(client *sfcli.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.client = client
	sc.wizard = setup.NewWizard(client)
	if sc.metrics != nil {
		sc.wizard.SetStepRecorder(sc.metrics)
	}
}

// Wizard returns the setup wizard.
func (sc *ServerContext) Wizard() *setup.Wizard {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.wizard
}

// SetMetrics attaches the metrics recorder and wires it into the wizard so
// that step durations are recorded.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
	if m != nil {
		sc.wizard.SetStepRecorder(m)
	}
}

// Metrics returns the metrics recorder, or nil when instrumentation is off.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger attaches the audit logger.
func (sc *ServerContext) SetAuditLogger(a *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = a
}

// AuditLogger returns the audit logger, or nil when none is configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
