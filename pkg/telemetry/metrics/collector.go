package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"mercator-hq/rql/pkg/config"
	"mercator-hq/rql/pkg/query"
)

var _ query.Observer = (*Collector)(nil)

// Collector owns a Prometheus registry and the builder metrics registered
// on it.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	paramsWritten  *prometheus.CounterVec
	aliasesApplied *prometheus.CounterVec
	builds         *prometheus.CounterVec
	fragments      prometheus.Histogram
}

// NewCollector creates a collector and registers its metrics. If registry is
// nil a fresh registry is used.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.FragmentBuckets) == 0 {
		cfg.FragmentBuckets = append([]float64(nil), config.DefaultFragmentBuckets...)
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		paramsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "params_written_total",
				Help:      "Total number of parameter values written, by key kind",
			},
			[]string{"key_kind"},
		),

		aliasesApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "aliases_applied_total",
				Help:      "Total number of alias substitutions applied to keys",
			},
			[]string{"alias"},
		),

		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "builds_total",
				Help:      "Total number of query serializations, by mode",
			},
			[]string{"mode"},
		),

		fragments: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "fragments",
				Help:      "Number of fragments produced per serialization",
				Buckets:   cfg.FragmentBuckets,
			},
		),
	}

	registry.MustRegister(c.paramsWritten, c.aliasesApplied, c.builds, c.fragments)

	return c
}

// Registry returns the registry the collector's metrics live in.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ParamWritten implements query.Observer.
func (c *Collector) ParamWritten(key string, values int) {
	if !c.config.Enabled {
		return
	}
	c.paramsWritten.WithLabelValues(keyKind(key)).Add(float64(values))
}

// AliasApplied implements query.Observer.
func (c *Collector) AliasApplied(alias string) {
	if !c.config.Enabled {
		return
	}
	c.aliasesApplied.WithLabelValues(alias).Inc()
}

// Built implements query.Observer.
func (c *Collector) Built(mode string, fragments int) {
	if !c.config.Enabled {
		return
	}
	c.builds.WithLabelValues(mode).Inc()
	c.fragments.Observe(float64(fragments))
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// keyKind maps a stored key to a bounded label value. Aliased keys that no
// longer match a known name fall into "bracketed" or "param".
func keyKind(key string) string {
	name := key
	if i := strings.IndexByte(key, '['); i >= 0 {
		name = key[:i]
	}

	switch name {
	case query.KeyFilter, query.KeyFields, query.KeySort, query.KeyInclude,
		query.KeyAppend, query.KeyPage, query.KeyLimit:
		return name
	}
	if name != key {
		return "bracketed"
	}
	return "param"
}
