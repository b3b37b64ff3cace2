package beacon

import (
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultPollInterval is the default period between ticks.
const DefaultPollInterval = time.Millisecond

// config holds configuration options for a Registry.
type config struct {
	interval     time.Duration
	clock        clockz.Clock
	syncMode     bool
	comparer     Comparer
	errorHistory int
	metrics      MetricsProvider
}

// Option configures a Registry.
type Option func(*config)

// WithPollInterval sets the period between ticks. Non-positive values keep
// DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithClock sets a custom clock for the poll timer.
// Use this with clockz.FakeClock to drive ticks deterministically.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithSyncMode disables the background poll loop. Ticks only happen when
// Poll is called, which makes tests deterministic.
func WithSyncMode() Option {
	return func(c *config) {
		c.syncMode = true
	}
}

// WithComparer replaces Differs as the change detector. The comparer runs
// while the registry is locked and must not call back into it.
func WithComparer(cmp Comparer) Option {
	return func(c *config) {
		if cmp != nil {
			c.comparer = cmp
		}
	}
}

// WithErrorHistory keeps the last n callback failures, retrievable with
// Registry.Errors. Zero disables the history.
func WithErrorHistory(n int) Option {
	return func(c *config) {
		c.errorHistory = n
	}
}

// WithMetrics sets a metrics provider for tick and dispatch observations.
func WithMetrics(m MetricsProvider) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

func defaultConfig() *config {
	return &config{
		interval: DefaultPollInterval,
		clock:    clockz.RealClock,
		comparer: Differs,
		metrics:  NoOpMetricsProvider{},
	}
}
