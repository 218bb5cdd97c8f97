// Package sfcli provides a client for the Salesforce CLI (sf).
//
// The client wraps the sf command-line tool and offers the operations the
// setup wizard needs:
//   - Checking whether the CLI is installed and which version
//   - Installing the CLI globally through npm
//   - Starting the browser-based web login flow for an org
//   - Describing the target org and verifying its connection state
//
// Prerequisites:
//  1. Node.js and npm must be available for the install path
//  2. A browser must be available for the login flow
//
// Authentication:
// Credentials are managed entirely by the sf CLI and stored in its own secure
// storage under the configured org alias. This package never sees tokens.
//
// Example usage:
//
//	client := sfcli.NewClient(shell.ExecRunner{}, config.FromEnv())
//	check := client.CheckInstalled(ctx)
//	if !check.Installed {
//	    if _, err := client.Install(ctx); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := client.Login(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	org, err := client.DescribeOrg(ctx)
package sfcli
