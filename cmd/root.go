package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the connect-to-salesforce-mcp application
var rootCmd = &cobra.Command{
	Use:   "connect-to-salesforce-mcp",
	Short: "MCP server that sets up a Salesforce connection",
	Long: `connect-to-salesforce-mcp is an MCP (Model Context Protocol) server that
walks a machine through connecting to a Salesforce org: it checks for the
Salesforce CLI, installs it when missing, opens a browser login, and verifies
the resulting connection.

It can run as:
  - An MCP server for AI assistants (default)
  - A standalone terminal setup wizard (setup subcommand)`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "connect-to-salesforce-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("connect-to-salesforce-mcp version %s\n", version)
		},
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newVersionCmd())
}
