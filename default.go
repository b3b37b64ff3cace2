package beacon

import "sync"

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the shared registry used by the package-level functions.
// It is created on first use with default options.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Mutate sets a subject's value on the default registry.
func Mutate(name string, value any) { Default().Mutate(name, value) }

// Subscribe attaches a callback on the default registry.
func Subscribe(name string, cb Callback) *Subscription { return Default().Subscribe(name, cb) }

// Unsubscribe detaches a callback from the default registry.
func Unsubscribe(sub *Subscription) { Default().Unsubscribe(sub) }

// DestroySubject removes a subject from the default registry.
func DestroySubject(name string) { Default().DestroySubject(name) }

// GetSubject returns a snapshot of a subject in the default registry.
func GetSubject(name string) (Subject, bool) { return Default().GetSubject(name) }

// Stop halts the default registry's poll loop.
func Stop(clearSubjects bool) { Default().Stop(clearSubjects) }
