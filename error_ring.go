package beacon

import "sync"

// errorRing is a thread-safe ring buffer of recent callback failures.
type errorRing struct {
	mu     sync.RWMutex
	errors []*CallbackError
	head   int
	count  int
}

// newErrorRing returns nil when size is not positive; a nil ring ignores
// pushes and reports no errors.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{errors: make([]*CallbackError, size)}
}

func (r *errorRing) push(err *CallbackError) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors[r.head] = err
	r.head = (r.head + 1) % len(r.errors)
	if r.count < len(r.errors) {
		r.count++
	}
}

// all returns the stored failures, oldest first.
func (r *errorRing) all() []*CallbackError {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}
	size := len(r.errors)
	out := make([]*CallbackError, r.count)
	start := (r.head - r.count + size) % size
	for i := range out {
		out[i] = r.errors[(start+i)%size]
	}
	return out
}
