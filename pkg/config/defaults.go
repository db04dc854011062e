package config

import "time"

// Default values for configuration fields.
const (
	DefaultConfigPath = "rql.yaml"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "text"
	DefaultMetricsNamespace = "rql"
	DefaultMetricsSubsystem = "query"

	// Watch defaults
	DefaultDebounceInterval = 100 * time.Millisecond
)

// DefaultFragmentBuckets are the histogram buckets for fragments per build.
var DefaultFragmentBuckets = []float64{0, 1, 2, 4, 8, 16, 32}

// ApplyDefaults fills every zero-valued field with its default.
func ApplyDefaults(cfg *Config) {
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}

	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Telemetry.Metrics.FragmentBuckets) == 0 {
		cfg.Telemetry.Metrics.FragmentBuckets = append([]float64(nil), DefaultFragmentBuckets...)
	}

	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}
}

// Default returns a configuration with every default applied and no aliases.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
