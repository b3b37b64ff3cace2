package prometheus

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/zoobzio/beacon"
)

func TestProvider_RecordsTicksAndDispatches(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := New(WithRegistry(reg), WithNamespace("test"))

	r := beacon.New(beacon.WithSyncMode(), beacon.WithMetrics(p))
	r.Subscribe("count", func(_, _ any) error { return nil })
	r.Subscribe("count", func(_, _ any) error { return nil })

	r.Mutate("count", 1)
	r.Poll(context.Background())
	r.Poll(context.Background())

	if got := testutil.ToFloat64(p.ticks); got != 2 {
		t.Errorf("expected 2 ticks, got %v", got)
	}
	if got := testutil.ToFloat64(p.dispatches.WithLabelValues("count")); got != 1 {
		t.Errorf("expected 1 dispatch, got %v", got)
	}
	if got := testutil.ToFloat64(p.callbacks.WithLabelValues("count")); got != 2 {
		t.Errorf("expected 2 callbacks, got %v", got)
	}
}

func TestProvider_CountsEveryFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := New(WithRegistry(reg))

	r := beacon.New(beacon.WithSyncMode(), beacon.WithMetrics(p))
	r.Subscribe("flaky", func(_, _ any) error { return errors.New("boom") })

	for i := 1; i <= 3; i++ {
		r.Mutate("flaky", i)
		r.Poll(context.Background())
	}

	if got := testutil.ToFloat64(p.failures.WithLabelValues("flaky")); got != 3 {
		t.Errorf("expected 3 failures, got %v", got)
	}
}

func TestProvider_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	New(WithRegistry(reg))
}
