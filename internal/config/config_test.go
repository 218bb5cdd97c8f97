package config

import (
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.InstanceURL != "https://login.salesforce.com" {
		t.Errorf("Default() InstanceURL = %q, want login endpoint", cfg.InstanceURL)
	}
	if cfg.OrgAlias != "mcp-org" {
		t.Errorf("Default() OrgAlias = %q, want mcp-org", cfg.OrgAlias)
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		instanceURL  string
		orgAlias     string
		wantInstance string
		wantAlias    string
	}{
		{
			name:         "defaults when unset",
			wantInstance: DefaultInstanceURL,
			wantAlias:    DefaultOrgAlias,
		},
		{
			name:         "instance URL override",
			instanceURL:  "https://test.salesforce.com",
			wantInstance: "https://test.salesforce.com",
			wantAlias:    DefaultOrgAlias,
		},
		{
			name:         "alias override",
			orgAlias:     "sandbox",
			wantInstance: DefaultInstanceURL,
			wantAlias:    "sandbox",
		},
		{
			name:         "both overridden",
			instanceURL:  "https://example.my.salesforce.com",
			orgAlias:     "prod",
			wantInstance: "https://example.my.salesforce.com",
			wantAlias:    "prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvInstanceURL, tt.instanceURL)
			t.Setenv(EnvOrgAlias, tt.orgAlias)

			cfg := FromEnv()
			if cfg.InstanceURL != tt.wantInstance {
				t.Errorf("FromEnv() InstanceURL = %q, want %q", cfg.InstanceURL, tt.wantInstance)
			}
			if cfg.OrgAlias != tt.wantAlias {
				t.Errorf("FromEnv() OrgAlias = %q, want %q", cfg.OrgAlias, tt.wantAlias)
			}
		})
	}
}
