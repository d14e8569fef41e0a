// Package metrics exposes Prometheus collectors for a Loom server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/loom-ui/loom/pkg/vdom"
)

// Config configures the metrics set.
type Config struct {
	// Namespace is the metrics namespace (default: "loom").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the metrics set.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the dispatch duration histogram buckets.
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
		Namespace: "loom",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for a Loom server.
//
// Metrics collected:
//   - loom_component_mounts_total: fresh component mounts by kind
//   - loom_component_reuses_total: instances reused in place by kind
//   - loom_component_teardowns_total: instances destroyed by kind
//   - loom_mutations_streamed_total: host mutations streamed to clients
//   - loom_active_sessions: currently connected sessions
//   - loom_dispatch_duration_seconds: event dispatch duration
type Metrics struct {
	mounts            *prometheus.CounterVec
	reuses            *prometheus.CounterVec
	teardowns         *prometheus.CounterVec
	mutationsStreamed prometheus.Counter
	activeSessions    prometheus.Gauge
	dispatchDuration  *prometheus.HistogramVec
}

// New creates and registers the metrics set.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		mounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "component_mounts_total",
			Help:        "Total number of fresh component mounts",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		reuses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "component_reuses_total",
			Help:        "Total number of component instances reused in place",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		teardowns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "component_teardowns_total",
			Help:        "Total number of component instances destroyed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		mutationsStreamed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "mutations_streamed_total",
			Help:        "Total number of host mutations streamed to clients",
			ConstLabels: config.ConstLabels,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_sessions",
			Help:        "Number of active WebSocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		dispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "dispatch_duration_seconds",
			Help:        "Event dispatch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"event"}),
	}
}

// Mounted implements comp.Observer.
func (m *Metrics) Mounted(kind vdom.Kind) {
	m.mounts.WithLabelValues(string(kind)).Inc()
}

// Adopted implements comp.Observer.
func (m *Metrics) Adopted(kind vdom.Kind) {
	m.reuses.WithLabelValues(string(kind)).Inc()
}

// Destroyed implements comp.Observer.
func (m *Metrics) Destroyed(kind vdom.Kind) {
	m.teardowns.WithLabelValues(string(kind)).Inc()
}

// RecordMutations records host mutations streamed to a client.
func (m *Metrics) RecordMutations(count int) {
	m.mutationsStreamed.Add(float64(count))
}

// SessionOpened records a new session.
func (m *Metrics) SessionOpened() {
	m.activeSessions.Inc()
}

// SessionClosed records a closed session.
func (m *Metrics) SessionClosed() {
	m.activeSessions.Dec()
}

// ObserveDispatch records one event dispatch duration.
func (m *Metrics) ObserveDispatch(event string, seconds float64) {
	m.dispatchDuration.WithLabelValues(event).Observe(seconds)
}
