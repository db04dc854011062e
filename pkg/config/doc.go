// Package config loads the rql configuration file.
//
// # File Format
//
// Configuration is YAML. Every section is optional:
//
//	aliases:
//	  filter: f
//	  sort: s
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: false
//	    namespace: rql
//
//	watch:
//	  debounce_interval: 100ms
//
// Aliases are applied in file order, so the mapping is decoded through
// yaml.Node instead of a Go map. A sequence of {from, to} entries is also
// accepted.
//
// # Environment Overrides
//
// LoadConfigWithEnvOverrides applies RQL_SECTION_FIELD variables after the
// file is read, for example RQL_TELEMETRY_LOGGING_LEVEL=debug. Environment
// variables take precedence over the file.
//
// # Hot Reload
//
// Watcher watches the configuration file with fsnotify and calls a reload
// callback once changes settle for the debounce interval.
package config
