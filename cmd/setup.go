package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/config"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/logging"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/server"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/setup"
)

func newSetupCmd() *cobra.Command {
	var (
		debugMode bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the Salesforce setup sequence in the terminal",
		Long: `Run the same setup sequence the connect_to_salesforce MCP tool performs,
directly in the terminal: check for the Salesforce CLI, install it when
missing, open a browser login, and verify the connection.

Reads SALESFORCE_INSTANCE_URL and SALESFORCE_ORG_ALIAS from the environment
or a .env file in the working directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if debugMode {
				level = slog.LevelDebug
			}
			if err := logging.Initialize(logging.FormatTint, level); err != nil {
				return err
			}

			return runSetup(cmd, quiet)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the progress spinner")

	return cmd
}

func runSetup(cmd *cobra.Command, quiet bool) error {
	cfg := config.FromEnv()

	sc, err := server.NewServerContext(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() { _ = sc.Shutdown() }()

	var s *spinner.Spinner
	if !quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Setting up Salesforce connection (a browser window may open)..."
		s.Start()
	}

	result, err := sc.Wizard().Run(cmd.Context())

	if s != nil {
		s.Stop()
	}

	if err != nil {
		return err
	}

	fmt.Print(setup.FormatResult(result))

	if !result.Success {
		return fmt.Errorf("setup did not complete")
	}
	return nil
}
