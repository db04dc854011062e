package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/rql/pkg/config"
	"mercator-hq/rql/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rql",
	Short: "rql - query string builder for collection APIs",
	Long: `rql builds canonical query strings for collection-oriented HTTP APIs that
follow the filter/sort/include/append/fields/page convention.

Parameters accumulate in the order they are first written and are
serialized as key=v1,v2 fragments joined with '&'. Keys can be rewritten
through an alias table loaded from the configuration file.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultConfigPath, "config file path (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the config file if present and builds the command logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, found, err := config.LoadOptional(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logCfg := logging.FromConfig(cfg.Telemetry.Logging, cmd.ErrOrStderr())
	if verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, err
	}

	if found {
		logger.Debug("Loaded configuration", "path", cfgFile, "aliases", len(cfg.Aliases))
	} else {
		logger.Debug("No configuration file, using defaults", "path", cfgFile)
	}

	return cfg, logger, nil
}
