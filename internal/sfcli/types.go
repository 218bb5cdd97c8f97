package sfcli

import "fmt"

// CheckResult reports whether the Salesforce CLI is installed.
type CheckResult struct {
	// Installed is true when the version query succeeded.
	Installed bool

	// Version is the version string reported by the CLI, empty when not
	// installed.
	Version string
}

// OrgInfo holds the connection details of a verified org.
type OrgInfo struct {
	// Username is the authenticated Salesforce username.
	Username string

	// InstanceURL is the org's instance endpoint.
	InstanceURL string

	// OrgID is the Salesforce organization ID.
	OrgID string
}

// CLIError represents an error from a Salesforce CLI operation.
type CLIError struct {
	// Op is the operation that failed (e.g. "install", "login", "describe")
	Op string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return fmt.Sprintf("sf %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *CLIError) Unwrap() error {
	return e.Err
}

// orgDisplayResponse is the JSON document produced by `sf org display --json`.
type orgDisplayResponse struct {
	Status int `json:"status"`
	Result struct {
		ConnectedStatus string `json:"connectedStatus"`
		Username        string `json:"username"`
		InstanceURL     string `json:"instanceUrl"`
		ID              string `json:"id"`
	} `json:"result"`
}
