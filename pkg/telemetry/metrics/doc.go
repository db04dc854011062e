// Package metrics records query builder activity as Prometheus metrics.
//
// A Collector implements query.Observer, so it can be attached to any builder:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	q := query.New("/users", query.WithObserver(collector))
//
// Metrics (namespace and subsystem come from the configuration):
//
//   - rql_query_params_written_total{key_kind}: values written, by key kind
//   - rql_query_aliases_applied_total{alias}: alias substitutions
//   - rql_query_builds_total{mode}: Build ("string") and BuildAsArray ("array") calls
//   - rql_query_fragments: histogram of fragments produced per build
//
// A disabled collector records nothing. Metrics are exposed through Handler
// for long-running processes, or dumped once with WriteText.
package metrics
