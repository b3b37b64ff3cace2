package beacon

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on poll loop activity.
type MetricsProvider interface {
	// OnTick is called after every tick with the number of subjects
	// dispatched and the time the tick took.
	OnTick(changed int, duration time.Duration)

	// OnDispatch is called before the callbacks of a changed subject run.
	OnDispatch(subject string, callbacks int)

	// OnCallbackFailure is called for every failed callback invocation,
	// including the ones whose signal is suppressed.
	OnCallbackFailure(subject string)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnTick(_ int, _ time.Duration) {}
func (NoOpMetricsProvider) OnDispatch(_ string, _ int)    {}
func (NoOpMetricsProvider) OnCallbackFailure(_ string)    {}
