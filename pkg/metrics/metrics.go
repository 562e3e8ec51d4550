// Package metrics exports reconciliation and memoization counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/reconcile/pkg/vango"
	"github.com/vango-dev/reconcile/pkg/vdom"
)

// Config configures the Prometheus collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "vango").
	Namespace string

	// Subsystem is the metrics subsystem (default: "reconcile").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for children changed per update.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vango",
		Subsystem: "reconcile",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records child updates and memo lookups.
// It implements vdom.UpdatesObserver and vango.MemoObserver.
type Metrics struct {
	updatesTotal    prometheus.Counter
	childrenAdded   prometheus.Counter
	childrenRemoved prometheus.Counter
	childrenChanged prometheus.Histogram
	memoLookups     *prometheus.CounterVec
}

// New creates and registers the collectors.
//
// Metrics collected (default names):
//   - vango_reconcile_child_updates_total: child-list comparisons
//   - vango_reconcile_children_added_total: children entering a list
//   - vango_reconcile_children_removed_total: children leaving a list
//   - vango_reconcile_children_changed: added+removed per comparison
//   - vango_reconcile_memo_lookups_total{kind,result}: memo hits and recomputes
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		updatesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "child_updates_total",
			Help:        "Total number of keyed child-list comparisons",
			ConstLabels: config.ConstLabels,
		}),

		childrenAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "children_added_total",
			Help:        "Total number of children that entered a list",
			ConstLabels: config.ConstLabels,
		}),

		childrenRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "children_removed_total",
			Help:        "Total number of children that left a list",
			ConstLabels: config.ConstLabels,
		}),

		childrenChanged: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "children_changed",
			Help:        "Children added plus removed per comparison",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		memoLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "memo_lookups_total",
			Help:        "Total memo lookups by memo kind and result",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "result"}),
	}
}

// ObserveChildUpdates implements vdom.UpdatesObserver.
func (m *Metrics) ObserveChildUpdates(added, removed int) {
	m.updatesTotal.Inc()
	m.childrenAdded.Add(float64(added))
	m.childrenRemoved.Add(float64(removed))
	m.childrenChanged.Observe(float64(added + removed))
}

// ObserveMemo implements vango.MemoObserver.
func (m *Metrics) ObserveMemo(kind string, recomputed bool) {
	result := "hit"
	if recomputed {
		result = "recompute"
	}
	m.memoLookups.WithLabelValues(kind, result).Inc()
}

// Install makes m the observer of vdom child updates and vango memos.
func (m *Metrics) Install() {
	vdom.SetUpdatesObserver(m)
	vango.SetMemoObserver(m)
}

// Uninstall removes the package observers.
func Uninstall() {
	vdom.SetUpdatesObserver(nil)
	vango.SetMemoObserver(nil)
}

var (
	_ vdom.UpdatesObserver = (*Metrics)(nil)
	_ vango.MemoObserver   = (*Metrics)(nil)
)
