package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for Salesforce settings.
const (
	EnvInstanceURL = "SALESFORCE_INSTANCE_URL"
	EnvOrgAlias    = "SALESFORCE_ORG_ALIAS"
)

// Defaults applied when the environment does not override them.
const (
	DefaultInstanceURL = "https://login.salesforce.com"
	DefaultOrgAlias    = "mcp-org"
)

// Config holds the immutable Salesforce connection settings for the process
// lifetime.
type Config struct {
	// InstanceURL is the base endpoint of the Salesforce org to connect to.
	InstanceURL string

	// OrgAlias is the local name under which the sf CLI stores the
	// authenticated org.
	OrgAlias string
}

// Default returns a Config with the built-in defaults.
func Default() Config {
	return Config{
		InstanceURL: DefaultInstanceURL,
		OrgAlias:    DefaultOrgAlias,
	}
}

// FromEnv builds a Config from the process environment, falling back to the
// defaults. A .env file in the working directory is loaded first if present,
// so local development matches deployment.
func FromEnv() Config {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to load .env file", "error", err)
		}
	} else {
		slog.Debug("loaded settings from .env file")
	}

	cfg := Default()
	if url := os.Getenv(EnvInstanceURL); url != "" {
		cfg.InstanceURL = url
	}
	if alias := os.Getenv(EnvOrgAlias); alias != "" {
		cfg.OrgAlias = alias
	}
	return cfg
}
