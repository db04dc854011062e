package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"mercator-hq/rql/pkg/query"
)

// Config is the root configuration structure for rql.
type Config struct {
	// Aliases is the ordered alias table applied to parameter keys.
	Aliases AliasList `yaml:"aliases"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Watch contains configuration for config file hot reload.
	Watch WatchConfig `yaml:"watch"`
}

// AliasList is an alias table that keeps the order it was written in.
type AliasList []query.Alias

// UnmarshalYAML decodes either a mapping (from: to) or a sequence of
// {from, to} entries, preserving document order.
func (l *AliasList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(AliasList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: alias entries must be scalar", k.Line)
			}
			out = append(out, query.Alias{From: k.Value, To: v.Value})
		}
		*l = out
		return nil

	case yaml.SequenceNode:
		var entries []query.Alias
		if err := node.Decode(&entries); err != nil {
			return err
		}
		*l = entries
		return nil

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
	}

	return fmt.Errorf("line %d: aliases must be a mapping or a list", node.Line)
}

// Table builds an alias table from the list.
func (l AliasList) Table() *query.AliasTable {
	return query.NewAliasTable(l...)
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether builder activity is counted.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "rql"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "query"
	Subsystem string `yaml:"subsystem"`

	// FragmentBuckets defines histogram buckets for fragments per build.
	// Default: [0, 1, 2, 4, 8, 16, 32]
	FragmentBuckets []float64 `yaml:"fragment_buckets"`
}

// WatchConfig contains configuration for the config file watcher.
type WatchConfig struct {
	// DebounceInterval is the quiet period after a change before reloading.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}
