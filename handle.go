package beacon

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Callback receives the previous and current value of a changed subject.
// A returned error, or a panic, is isolated to this callback.
type Callback func(prev, cur any) error

// handle wraps a Callback with an identity and its failure state.
//
// lastError and reported are only touched by the dispatching goroutine while
// it holds Registry.dispatchMu.
type handle struct {
	id       string
	fn       Callback
	detached atomic.Bool

	lastError error
	reported  bool
}

func newHandle(fn Callback) *handle {
	return &handle{
		id: uuid.New().String(),
		fn: fn,
	}
}

// invoke calls the callback, converting a panic into an error.
func (h *handle) invoke(prev, cur any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, r)
		}
	}()
	return h.fn(prev, cur)
}

// fail records err and reports whether it should be emitted. Only the first
// failure after a success is emitted.
func (h *handle) fail(err error) bool {
	h.lastError = err
	if h.reported {
		return false
	}
	h.reported = true
	return true
}

// succeed clears the failure state and reports whether the handle was failing.
func (h *handle) succeed() bool {
	failing := h.lastError != nil
	h.lastError = nil
	h.reported = false
	return failing
}
