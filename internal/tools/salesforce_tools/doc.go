// Package salesforce_tools provides MCP tools for connecting the server to a
// Salesforce org.
//
// The package registers a single tool, connect_to_salesforce, that takes no
// arguments and walks the caller's machine through the full setup sequence:
// checking for the Salesforce CLI, installing it when missing, opening a
// browser login, and verifying the resulting connection. The tool always
// returns a plain-text transcript of the steps it ran.
package salesforce_tools
