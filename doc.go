/*
Package beacon provides named observable values for in-process application
state.

A Registry holds subjects: named cells with a previous and a current value.
Callers change a subject with Mutate and observe it with Subscribe. Changes are
not pushed synchronously; a poll loop compares each subject's previous and
current value once per tick and calls its callbacks with both when they
differ. Mutations made between two ticks collapse into a single notification
carrying the last value.

# Basic Usage

	r := beacon.New()

	sub := r.Subscribe("count", func(prev, cur any) error {
	    log.Printf("count changed: %v -> %v", prev, cur)
	    return nil
	})

	r.Mutate("count", 1) // count changed: <nil> -> 1
	r.Mutate("count", 1) // no notification
	r.Mutate("count", 2) // count changed: 1 -> 2

	r.Unsubscribe(sub)
	r.Stop(false)

The package-level functions (Mutate, Subscribe, ...) operate on a shared
registry returned by Default.

# Change Detection

Primitive values (nil, bools, numbers, strings) are compared with ==. A nil
map, slice or pointer counts as nil. Switching between a primitive and a
structured value is always a change.

Structured values of the same type are compared with reflect.DeepEqual, so a
new map with the same contents is not a change and unexported struct fields
are taken into account. Structured values of different types are compared by
their canonical CBOR encoding; a self-referencing value never equals a value
of another type. WithComparer replaces this logic.

# Failures

A callback that returns an error or panics does not affect other callbacks or
subjects. The first failure of a callback is emitted as CallbackFailed;
repeated failures are suppressed until the callback succeeds again, which
emits CallbackRecovered. WithErrorHistory keeps recent failures for Errors.

# Observability

Diagnostics are capitan signals:

	capitan.Hook(beacon.CallbackFailed, func(_ context.Context, e *capitan.Event) {
	    subject, _ := beacon.KeySubject.From(e)
	    msg, _ := beacon.KeyError.From(e)
	    log.Printf("callback on %s failed: %s", subject, msg)
	})

Counters and tick durations can be exported through a MetricsProvider such as
the one in pkg/prometheus.

# Testing

WithSyncMode disables the background loop; call Poll to run a tick:

	r := beacon.New(beacon.WithSyncMode())
	r.Subscribe("s", cb)
	r.Mutate("s", 1)
	r.Poll(ctx)

WithClock accepts a clockz.FakeClock to drive the real loop deterministically.
*/
package beacon
