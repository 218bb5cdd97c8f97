package sfcli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/config"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/shell"
)

// ErrNotConnected is returned by DescribeOrg when the org describe output
// parses but does not indicate a connected org.
var ErrNotConnected = errors.New("Organization not connected")

// installPackage is the npm package that provides the sf binary.
const installPackage = "@salesforce/cli"

// Client provides access to Salesforce CLI operations.
type Client struct {
	runner shell.Runner
	cfg    config.Config
}

// NewClient creates a Salesforce CLI client using the given runner and
// configuration. The runner decides how commands reach the platform shell;
// tests inject a fake.
func NewClient(runner shell.Runner, cfg config.Config) *Client {
	return &Client{
		runner: runner,
		cfg:    cfg,
	}
}

// Alias returns the configured org alias.
func (c *Client) Alias() string {
	return c.cfg.OrgAlias
}

// InstanceURL returns the configured instance URL.
func (c *Client) InstanceURL() string {
	return c.cfg.InstanceURL
}

// CheckInstalled runs a version query against the sf CLI. Any failure
// (binary absent, non-zero exit) is reported as not installed; no distinction
// is surfaced at this level.
func (c *Client) CheckInstalled(ctx context.Context) CheckResult {
	res, err := c.runner.Run(ctx, "sf --version")
	if err != nil || res.ExitCode != 0 {
		slog.Debug("sf CLI not detected", "exit_code", res.ExitCode, "error", err)
		return CheckResult{Installed: false}
	}

	return CheckResult{
		Installed: true,
		Version:   strings.TrimSpace(res.Stdout),
	}
}

// Install performs a global npm install of the Salesforce CLI, discarding the
// installer's output, then re-runs the presence check to confirm. It returns
// the confirmed version string. A single failure is final; there is no retry.
func (c *Client) Install(ctx context.Context) (string, error) {
	cmd := shell.SuppressOutput("npm install -g " + installPackage)

	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return "", &CLIError{Op: "install", Err: err}
	}
	if res.ExitCode != 0 {
		return "", &CLIError{Op: "install", Err: fmt.Errorf("npm install exited with status %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))}
	}

	check := c.CheckInstalled(ctx)
	if !check.Installed {
		return "", &CLIError{Op: "install", Err: errors.New("sf CLI still not found after install")}
	}
	return check.Version, nil
}

// Login starts the sf web login flow for the configured instance URL and
// alias, marking the resulting org as the default. It blocks until the user
// finishes the browser-based authentication or the CLI's own timeout elapses;
// this package enforces no timeout of its own. The CLI's output is discarded.
func (c *Client) Login(ctx context.Context) error {
	cmd := shell.SuppressOutput(fmt.Sprintf(
		"sf org login web --instance-url %s --alias %s --set-default",
		c.cfg.InstanceURL, c.cfg.OrgAlias,
	))

	slog.Debug("starting web login flow", "alias", c.cfg.OrgAlias, "instance_url", c.cfg.InstanceURL)

	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return &CLIError{Op: "login", Err: err}
	}
	if res.ExitCode != 0 {
		return &CLIError{Op: "login", Err: fmt.Errorf("login exited with status %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))}
	}
	return nil
}

// DescribeOrg runs the org describe command for the configured alias and
// verifies the connection state. The org is accepted as connected only when
// the response status is zero AND the connected status is the literal
// "Connected"; otherwise ErrNotConnected is returned even though parsing
// succeeded.
func (c *Client) DescribeOrg(ctx context.Context) (*OrgInfo, error) {
	cmd := shell.SuppressStderr(fmt.Sprintf(
		"sf org display --target-org %s --json",
		c.cfg.OrgAlias,
	))

	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return nil, &CLIError{Op: "describe", Err: err}
	}

	// The payload is extracted from the combined output: despite the
	// redirection the CLI may still prepend diagnostic text to stdout.
	var display orgDisplayResponse
	if err := ExtractJSON(res.Combined(), &display); err != nil {
		return nil, &CLIError{Op: "describe", Err: err}
	}

	if display.Status != 0 || display.Result.ConnectedStatus != "Connected" {
		return nil, ErrNotConnected
	}

	return &OrgInfo{
		Username:    display.Result.Username,
		InstanceURL: display.Result.InstanceURL,
		OrgID:       display.Result.ID,
	}, nil
}
