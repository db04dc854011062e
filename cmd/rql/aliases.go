package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/rql/pkg/cli"
	"mercator-hq/rql/pkg/config"
)

var aliasesFlags struct {
	format string
}

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Show the configured alias table",
	Long: `Show the alias table from the configuration file, in the order the
aliases are applied.

Examples:
  # Text output
  rql aliases --config rql.yaml

  # JSON output
  rql aliases --format json`,
	RunE: showAliases,
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
	aliasesCmd.Flags().StringVar(&aliasesFlags.format, "format", "text", "output format: text, json")
}

func showAliases(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return cli.NewCommandError("aliases", err)
	}

	formatter, err := cli.NewFormatter(cli.OutputFormat(aliasesFlags.format))
	if err != nil {
		return err
	}

	if cli.OutputFormat(aliasesFlags.format) == cli.FormatJSON {
		aliases := cfg.Aliases
		if aliases == nil {
			aliases = config.AliasList{}
		}
		return formatter.FormatTo(cmd.OutOrStdout(), aliases)
	}

	lines := make([]string, 0, len(cfg.Aliases))
	for _, a := range cfg.Aliases {
		lines = append(lines, fmt.Sprintf("%s -> %s", a.From, a.To))
	}
	return formatter.FormatTo(cmd.OutOrStdout(), lines)
}
