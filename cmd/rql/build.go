package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/rql/pkg/cli"
	"mercator-hq/rql/pkg/config"
	"mercator-hq/rql/pkg/query"
	"mercator-hq/rql/pkg/telemetry/metrics"
)

var buildFlags struct {
	filters      []string
	fields       []string
	sorts        []string
	includes     []string
	appends      []string
	params       []string
	page         int
	limit        int
	pageSet      bool
	limitSet     bool
	forgets      []string
	forgetValues []string

	array             bool
	includePath       bool
	includePagination bool
	excludes          []string

	format  string
	watch   bool
	metrics bool
}

var buildCmd = &cobra.Command{
	Use:   "build PATH",
	Short: "Build a query string",
	Long: `Build a query string for PATH from the given parameters.

Repeated flags accumulate. Mutations are applied in this order:
filter, fields, sort, include, append, param, page, limit, forget,
forget-value.

Examples:
  # Filter and sort
  rql build /users --filter name=john --sort name --sort -age
  # => /users?filter[name]=john&sort=name,-age

  # Sparse fieldsets
  rql build /users --fields users=name,age --fields posts=title
  # => /users?fields[users]=name,age&fields[posts]=title

  # Fragments for cache keys, pagination dropped
  rql build /users --filter name=john --page 2 --array --include-path

  # Rebuild whenever the alias config changes
  rql build /users --filter name=john --config rql.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	f := buildCmd.Flags()
	f.StringArrayVar(&buildFlags.filters, "filter", nil, "filter as field=value (repeatable)")
	f.StringArrayVar(&buildFlags.fields, "fields", nil, "sparse fieldset as resource=a,b (repeatable)")
	f.StringArrayVar(&buildFlags.sorts, "sort", nil, "sort field, '-' prefix for descending (repeatable)")
	f.StringArrayVar(&buildFlags.includes, "include", nil, "related resource to include (repeatable)")
	f.StringArrayVar(&buildFlags.appends, "append", nil, "attribute to append (repeatable)")
	f.StringArrayVar(&buildFlags.params, "param", nil, "custom parameter as key=v1,v2 (repeatable)")
	f.IntVar(&buildFlags.page, "page", 0, "page number, omitted unless given")
	f.IntVar(&buildFlags.limit, "limit", 0, "page size, omitted unless given")
	f.StringArrayVar(&buildFlags.forgets, "forget", nil, "key to remove (repeatable)")
	f.StringArrayVar(&buildFlags.forgetValues, "forget-value", nil, "value to remove as key=value (repeatable)")

	f.BoolVar(&buildFlags.array, "array", false, "print fragments instead of a query string")
	f.BoolVar(&buildFlags.includePath, "include-path", false, "with --array, print the path first")
	f.BoolVar(&buildFlags.includePagination, "include-pagination", false, "with --array, keep page and limit")
	f.StringArrayVar(&buildFlags.excludes, "exclude", nil, "with --array, key to leave out (repeatable)")

	f.StringVar(&buildFlags.format, "format", "text", "output format: text, json")
	f.BoolVar(&buildFlags.watch, "watch", false, "rebuild when the config file changes")
	f.BoolVar(&buildFlags.metrics, "metrics", false, "dump builder metrics to stderr")
}

// buildResult is the JSON shape of a string build.
type buildResult struct {
	Path  string `json:"path"`
	Query string `json:"query"`
}

// fragmentsResult is the JSON shape of an --array build.
type fragmentsResult struct {
	Path      string   `json:"path"`
	Fragments []string `json:"fragments"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return cli.NewCommandError("build", err)
	}

	formatter, err := cli.NewFormatter(cli.OutputFormat(buildFlags.format))
	if err != nil {
		return err
	}

	// An explicit --page 0 or --limit 0 is still written.
	buildFlags.pageSet = buildFlags.pageSet || cmd.Flags().Changed("page")
	buildFlags.limitSet = buildFlags.limitSet || cmd.Flags().Changed("limit")

	metricsCfg := cfg.Telemetry.Metrics
	if buildFlags.metrics {
		metricsCfg.Enabled = true
	}
	collector := metrics.NewCollector(&metricsCfg, nil)

	aliases := cfg.Aliases.Table()
	path := args[0]

	render := func() error {
		q, err := newQuery(path, aliases, collector)
		if err != nil {
			return err
		}
		logger.Debug("Query built", "path", path, "keys", len(q.Keys()), "aliases", aliases.Len())
		return formatter.FormatTo(cmd.OutOrStdout(), renderQuery(q, buildFlags.format))
	}

	if err := render(); err != nil {
		return err
	}

	if buildFlags.watch {
		if err := watchConfig(cmd, cfg, aliases, logger, render); err != nil {
			return err
		}
	}

	if buildFlags.metrics {
		return collector.WriteText(cmd.ErrOrStderr())
	}
	return nil
}

// watchConfig redefines aliases from the config file on every change and
// renders again, until interrupted.
func watchConfig(cmd *cobra.Command, cfg *config.Config, aliases *query.AliasTable, logger *slog.Logger, render func() error) error {
	watcher, err := config.NewWatcher(cfgFile, cfg.Watch.DebounceInterval, logger)
	if err != nil {
		return cli.NewCommandError("build", err)
	}
	defer watcher.Stop()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := cli.SetupSignalHandler(parent)
	defer stop()

	return watcher.Watch(ctx, func() error {
		next, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return err
		}
		aliases.Define(next.Aliases...)
		logger.Info("Aliases reloaded", "aliases", len(next.Aliases))
		return render()
	})
}

// newQuery applies the build flags to a fresh builder.
func newQuery(path string, aliases *query.AliasTable, observer query.Observer) (*query.Builder, error) {
	opts := []query.Option{query.WithAliases(aliases)}
	if observer != nil {
		opts = append(opts, query.WithObserver(observer))
	}
	q := query.New(path, opts...)

	for _, raw := range buildFlags.filters {
		key, value, err := splitPair("filter", raw)
		if err != nil {
			return nil, err
		}
		q.Filter(key, value)
	}

	for _, raw := range buildFlags.fields {
		resource, list, err := splitPair("fields", raw)
		if err != nil {
			return nil, err
		}
		q.Fields(query.ResourceFields{Resource: resource, Fields: splitList(list)})
	}

	// Sort, Include and Append with no values would still create an empty key.
	q.When(len(buildFlags.sorts) > 0, func(q *query.Builder) { q.Sort(buildFlags.sorts...) })
	q.When(len(buildFlags.includes) > 0, func(q *query.Builder) { q.Include(buildFlags.includes...) })
	q.When(len(buildFlags.appends) > 0, func(q *query.Builder) { q.Append(buildFlags.appends...) })

	for _, raw := range buildFlags.params {
		key, list, err := splitPair("param", raw)
		if err != nil {
			return nil, err
		}
		q.Param(key, splitList(list)...)
	}

	q.When(buildFlags.pageSet, func(q *query.Builder) { q.Page(buildFlags.page) })
	q.When(buildFlags.limitSet, func(q *query.Builder) { q.Limit(buildFlags.limit) })

	q.Forgets(buildFlags.forgets...)

	for _, raw := range buildFlags.forgetValues {
		key, value, err := splitPair("forget-value", raw)
		if err != nil {
			return nil, err
		}
		q.ForgetValue(key, value)
	}

	return q, nil
}

// renderQuery picks the output value for the formatter.
func renderQuery(q *query.Builder, format string) interface{} {
	var fragments []string
	if buildFlags.array {
		fragments = q.BuildAsArray(query.BuildOptions{
			IncludePath:       buildFlags.includePath,
			IncludePagination: buildFlags.includePagination,
			Excludes:          buildFlags.excludes,
		})
	}

	if cli.OutputFormat(format) == cli.FormatJSON {
		if buildFlags.array {
			if fragments == nil {
				fragments = []string{}
			}
			return fragmentsResult{Path: q.Path(), Fragments: fragments}
		}
		return buildResult{Path: q.Path(), Query: q.Build()}
	}

	if buildFlags.array {
		return fragments
	}
	return q.Build()
}

// splitPair splits "key=value" at the first '='.
func splitPair(flag, raw string) (string, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return "", "", cli.NewFlagError(flag, raw, "expected key=value")
	}
	return key, value, nil
}

// splitList splits a comma-separated value list, keeping empty input empty.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

