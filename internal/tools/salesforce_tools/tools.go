package salesforce_tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/instrumentation"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/server"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/setup"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/tools/common"
)

// ToolConnect is the name of the setup tool.
const ToolConnect = "connect_to_salesforce"

// RegisterSalesforceTools registers the Salesforce tools with the MCP server.
func RegisterSalesforceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	connectTool := mcp.NewTool(ToolConnect,
		mcp.WithDescription("Set up the connection to Salesforce: checks for the Salesforce CLI, "+
			"installs it if missing, opens a browser window to log in, and verifies the connection. "+
			"Takes no arguments. The login step opens a browser on this machine and waits for the "+
			"user to finish."),
	)

	s.AddTool(connectTool, common.InstrumentedToolHandler(ToolConnect, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleConnect(ctx, sc)
		},
	))

	return nil
}

// handleConnect handles the connect_to_salesforce tool
func handleConnect(ctx context.Context, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	start := time.Now()

	result, err := sc.Wizard().Run(ctx)
	if err != nil {
		// Single-flight rejection: another run holds the alias. No steps ran,
		// so there is no transcript to return.
		return mcp.NewToolResultError(err.Error()), nil
	}

	recordRun(ctx, sc, result, time.Since(start))

	return mcp.NewToolResultText(setup.FormatResult(result)), nil
}

// recordRun emits the run-level metric and audit record. Both are optional.
func recordRun(ctx context.Context, sc *server.ServerContext, result *setup.Result, duration time.Duration) {
	status := instrumentation.StatusSuccess
	if !result.Success {
		status = instrumentation.StatusError
	}

	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordSetupRun(ctx, status)
	}

	if audit := sc.AuditLogger(); audit.Enabled() {
		record := &instrumentation.SetupRunRecord{
			RunID:     result.RunID,
			Tool:      ToolConnect,
			Alias:     sc.Config().OrgAlias,
			Steps:     len(result.Steps),
			StartTime: time.Now().Add(-duration),
			Duration:  duration,
			Success:   result.Success,
		}
		if !result.Success {
			if n := len(result.Steps); n > 0 {
				record.Error = result.Steps[n-1].Message
			}
		}
		if result.Connection != nil {
			record.Username = result.Connection.Username
		}
		audit.LogSetupRun(record)
	}
}
