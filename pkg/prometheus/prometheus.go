// Package prometheus provides a beacon.MetricsProvider backed by
// Prometheus collectors.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zoobzio/beacon"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "beacon").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for tick duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
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

// WithBuckets sets the tick duration histogram buckets.
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

// Provider records registry activity. Create it once per Prometheus registry;
// registering the same collectors twice panics.
type Provider struct {
	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	dispatches   *prometheus.CounterVec
	callbacks    *prometheus.CounterVec
	failures     *prometheus.CounterVec
}

// New registers the collectors and returns a Provider.
func New(opts ...Option) *Provider {
	cfg := Config{
		Namespace: "beacon",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Provider{
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "ticks_total",
			Help:        "Total number of poll ticks",
			ConstLabels: cfg.ConstLabels,
		}),

		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "tick_duration_seconds",
			Help:        "Poll tick duration in seconds, including callbacks",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),

		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total number of subject changes dispatched",
			ConstLabels: cfg.ConstLabels,
		}, []string{"subject"}),

		callbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "callbacks_total",
			Help:        "Total number of callbacks scheduled by dispatches",
			ConstLabels: cfg.ConstLabels,
		}, []string{"subject"}),

		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "callback_failures_total",
			Help:        "Total number of failed callback invocations",
			ConstLabels: cfg.ConstLabels,
		}, []string{"subject"}),
	}
}

func (p *Provider) OnTick(_ int, d time.Duration) {
	p.ticks.Inc()
	p.tickDuration.Observe(d.Seconds())
}

func (p *Provider) OnDispatch(subject string, callbacks int) {
	p.dispatches.WithLabelValues(subject).Inc()
	p.callbacks.WithLabelValues(subject).Add(float64(callbacks))
}

func (p *Provider) OnCallbackFailure(subject string) {
	p.failures.WithLabelValues(subject).Inc()
}

var _ beacon.MetricsProvider = (*Provider)(nil)
