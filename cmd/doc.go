// Package cmd implements the command-line interface for connect-to-salesforce-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the connect_to_salesforce tool
//   - setup: Run the Salesforce setup sequence directly in the terminal
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
