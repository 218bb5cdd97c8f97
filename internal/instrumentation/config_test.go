package instrumentation

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != "connect-to-salesforce-mcp" {
		t.Errorf("DefaultConfig() ServiceName = %q", config.ServiceName)
	}
	if config.Enabled {
		t.Error("DefaultConfig() Enabled = true, want opt-in default false")
	}
	if config.MetricsExporter != ExporterPrometheus {
		t.Errorf("DefaultConfig() MetricsExporter = %q, want prometheus", config.MetricsExporter)
	}
	if config.TracingExporter != ExporterNone {
		t.Errorf("DefaultConfig() TracingExporter = %q, want none", config.TracingExporter)
	}
	if !config.AuditLogging.Enabled {
		t.Error("DefaultConfig() AuditLogging.Enabled = false, want true")
	}
	if config.AuditLogging.IncludePII {
		t.Error("DefaultConfig() AuditLogging.IncludePII = true, want false")
	}
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "sf-setup-test")
	t.Setenv("INSTRUMENTATION_ENABLED", "true")
	t.Setenv("METRICS_EXPORTER", "stdout")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.5")

	config := DefaultConfig()

	if config.ServiceName != "sf-setup-test" {
		t.Errorf("ServiceName = %q, want env override", config.ServiceName)
	}
	if !config.Enabled {
		t.Error("Enabled = false, want env override true")
	}
	if config.MetricsExporter != ExporterStdout {
		t.Errorf("MetricsExporter = %q, want stdout", config.MetricsExporter)
	}
	if config.TraceSamplingRate != 0.5 {
		t.Errorf("TraceSamplingRate = %f, want 0.5", config.TraceSamplingRate)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "default config is valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "sampling rate above one",
			mutate:  func(c *Config) { c.TraceSamplingRate = 1.5 },
			wantErr: true,
		},
		{
			name:    "negative sampling rate",
			mutate:  func(c *Config) { c.TraceSamplingRate = -0.1 },
			wantErr: true,
		},
		{
			name:    "unknown metrics exporter",
			mutate:  func(c *Config) { c.MetricsExporter = "statsd" },
			wantErr: true,
		},
		{
			name:    "unknown tracing exporter",
			mutate:  func(c *Config) { c.TracingExporter = "jaeger" },
			wantErr: true,
		},
		{
			name:    "otlp metrics without endpoint",
			mutate:  func(c *Config) { c.MetricsExporter = ExporterOTLP },
			wantErr: true,
		},
		{
			name: "otlp metrics with endpoint",
			mutate: func(c *Config) {
				c.MetricsExporter = ExporterOTLP
				c.OTLPEndpoint = "localhost:4318"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
