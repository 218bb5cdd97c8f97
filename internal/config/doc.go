// Package config holds the runtime configuration for the Salesforce setup
// wizard.
//
// Configuration is read from the process environment exactly once at startup
// (FromEnv) and the resulting Config value is passed explicitly into the
// server context and the wizard. Nothing in the rest of the codebase reads
// environment variables for Salesforce settings.
package config
