package beacon

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Registry owns a set of named subjects and polls them for changes.
//
// Mutations are only recorded; a background loop compares each subject's
// previous and current value once per tick and calls the subject's callbacks
// when they differ. Several mutations between two ticks collapse into one
// notification carrying the last value.
//
// The loop starts lazily on the first Mutate or Subscribe and can be halted
// with Stop. It restarts on the next Mutate or Subscribe.
type Registry struct {
	interval time.Duration
	clock    clockz.Clock
	syncMode bool
	differs  Comparer
	metrics  MetricsProvider
	errors   *errorRing

	mu       sync.Mutex
	subjects []*subject
	index    map[string]*subject
	state    State
	cancel   context.CancelFunc

	// dispatchMu serialises ticks between the loop and Poll.
	dispatchMu sync.Mutex
}

// New creates an empty Registry. No goroutine is started until the registry
// is first used.
//
// Example:
//
//	r := beacon.New(beacon.WithPollInterval(5 * time.Millisecond))
//	sub := r.Subscribe("count", func(prev, cur any) error {
//	    log.Printf("count: %v -> %v", prev, cur)
//	    return nil
//	})
//	r.Mutate("count", 1)
//	defer r.Unsubscribe(sub)
func New(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Registry{
		interval: cfg.interval,
		clock:    cfg.clock,
		syncMode: cfg.syncMode,
		differs:  cfg.comparer,
		metrics:  cfg.metrics,
		errors:   newErrorRing(cfg.errorHistory),
		index:    make(map[string]*subject),
	}
}

// State returns the lifecycle state of the poll loop.
func (r *Registry) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start schedules the poll loop if it is not already running. Mutate and
// Subscribe call it implicitly. In sync mode Start does nothing.
func (r *Registry) Start() {
	r.mu.Lock()
	started := r.startLocked()
	r.mu.Unlock()

	if started {
		r.emitStarted(context.Background())
	}
}

// Mutate sets the current value of the named subject, creating it if needed.
// Callbacks see the change on the next tick.
func (r *Registry) Mutate(name string, value any) {
	ctx := context.Background()
	if blank(name) {
		r.reject(ctx, "mutate", ErrBlankName)
		return
	}

	r.mu.Lock()
	s, created := r.lookupOrCreate(name, value)
	if !created {
		s.cur = value
	}
	started := r.startLocked()
	r.mu.Unlock()

	if created {
		capitan.Emit(ctx, SubjectCreated, KeySubject.Field(name), KeyOperation.Field("mutate"))
	}
	if started {
		r.emitStarted(ctx)
	}
}

// Subscribe attaches cb to the named subject, creating the subject if needed.
// It returns nil when name is blank or cb is nil.
func (r *Registry) Subscribe(name string, cb Callback) *Subscription {
	ctx := context.Background()
	if blank(name) {
		r.reject(ctx, "subscribe", ErrBlankName)
		return nil
	}
	if cb == nil {
		r.reject(ctx, "subscribe", ErrNilCallback)
		return nil
	}

	h := newHandle(cb)

	r.mu.Lock()
	s, created := r.lookupOrCreate(name, nil)
	s.attach(h)
	subscribers := len(s.callbacks)
	started := r.startLocked()
	r.mu.Unlock()

	if created {
		capitan.Emit(ctx, SubjectCreated, KeySubject.Field(name), KeyOperation.Field("subscribe"))
	}
	capitan.Emit(ctx, SubscriptionAdded,
		KeySubject.Field(name),
		KeyCallbackID.Field(h.id),
		KeySubscribers.Field(subscribers),
	)
	if started {
		r.emitStarted(ctx)
	}

	return &Subscription{subject: name, id: h.id}
}

// Unsubscribe detaches the callback identified by sub. Tokens whose subject
// or callback no longer exists are ignored.
func (r *Registry) Unsubscribe(sub *Subscription) {
	ctx := context.Background()
	if !sub.valid() {
		capitan.Emit(ctx, SubscriptionRejected,
			KeyOperation.Field("unsubscribe"),
			KeyError.Field(ErrInvalidSubscription.Error()),
		)
		return
	}

	r.mu.Lock()
	removed := false
	if s, ok := r.index[sub.subject]; ok {
		removed = s.detach(sub.id)
	}
	r.mu.Unlock()

	if removed {
		capitan.Emit(ctx, SubscriptionRemoved,
			KeySubject.Field(sub.subject),
			KeyCallbackID.Field(sub.id),
		)
	}
}

// DestroySubject removes the named subject and all of its callbacks.
func (r *Registry) DestroySubject(name string) {
	ctx := context.Background()
	if blank(name) {
		r.reject(ctx, "destroy", ErrBlankName)
		return
	}

	r.mu.Lock()
	s, ok := r.index[name]
	if ok {
		s.detachAll()
		delete(r.index, name)
		r.subjects = slices.DeleteFunc(r.subjects, func(x *subject) bool { return x == s })
	}
	r.mu.Unlock()

	if ok {
		capitan.Emit(ctx, SubjectDestroyed, KeySubject.Field(name))
	}
}

// GetSubject returns a snapshot of the named subject.
func (r *Registry) GetSubject(name string) (Subject, bool) {
	if blank(name) {
		r.reject(context.Background(), "get", ErrBlankName)
		return Subject{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.index[name]
	if !ok {
		return Subject{}, false
	}
	return s.snapshot(), true
}

// Names returns the subject names in creation order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.subjects))
	for i, s := range r.subjects {
		names[i] = s.name
	}
	return names
}

// Errors returns the recorded callback failures, oldest first. It is empty
// unless WithErrorHistory was set.
func (r *Registry) Errors() []*CallbackError {
	return r.errors.all()
}

// Stop halts the poll loop. A dispatch already in progress completes. When
// clearSubjects is true every subject and callback is discarded.
//
// Stop does not wait for the loop goroutine and may be called from a callback.
// Callbacks may also call Mutate, Subscribe, Unsubscribe and DestroySubject.
func (r *Registry) Stop(clearSubjects bool) {
	r.mu.Lock()
	wasRunning := r.state == StateRunning
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.state = StateStopped

	cleared := 0
	if clearSubjects {
		cleared = len(r.subjects)
		for _, s := range r.subjects {
			s.detachAll()
		}
		r.subjects = nil
		r.index = make(map[string]*subject)
	}
	r.mu.Unlock()

	if wasRunning || cleared > 0 {
		capitan.Emit(context.Background(), RegistryStopped,
			KeyState.Field(StateStopped.String()),
			KeyCleared.Field(cleared),
		)
	}
}

// Poll runs one tick synchronously and returns the number of subjects whose
// callbacks were dispatched. It is the only way ticks happen in sync mode.
//
// Only one tick runs at a time. When a tick is already in progress, including
// when Poll is called from a callback, Poll returns 0 without dispatching and
// the pending changes are left for the next tick.
func (r *Registry) Poll(ctx context.Context) int {
	if !r.dispatchMu.TryLock() {
		return 0
	}
	defer r.dispatchMu.Unlock()

	start := r.clock.Now()
	batch := r.collect()
	for _, c := range batch {
		r.dispatch(ctx, c)
	}
	r.metrics.OnTick(len(batch), r.clock.Now().Sub(start))

	return len(batch)
}

// change is a subject's dispatch work captured at collection time.
type change struct {
	subject string
	prev    any
	cur     any
	handles []*handle
}

// collect finds changed subjects and commits prev = cur for each of them.
func (r *Registry) collect() []change {
	r.mu.Lock()
	defer r.mu.Unlock()

	var batch []change
	for _, s := range r.subjects {
		if len(s.callbacks) == 0 || !r.differs(s.prev, s.cur) {
			continue
		}
		batch = append(batch, change{
			subject: s.name,
			prev:    s.prev,
			cur:     s.cur,
			handles: slices.Clone(s.callbacks),
		})
		s.prev = s.cur
	}
	return batch
}

// dispatch calls every still-attached handle of c. Failures never stop the
// remaining handles.
func (r *Registry) dispatch(ctx context.Context, c change) {
	capitan.Emit(ctx, SubjectChanged,
		KeySubject.Field(c.subject),
		KeySubscribers.Field(len(c.handles)),
	)
	r.metrics.OnDispatch(c.subject, len(c.handles))

	for _, h := range c.handles {
		if h.detached.Load() {
			continue
		}

		err := h.invoke(c.prev, c.cur)
		if err == nil {
			if h.succeed() {
				capitan.Emit(ctx, CallbackRecovered,
					KeySubject.Field(c.subject),
					KeyCallbackID.Field(h.id),
				)
			}
			continue
		}

		r.errors.push(&CallbackError{Subject: c.subject, CallbackID: h.id, Err: err})
		r.metrics.OnCallbackFailure(c.subject)
		if h.fail(err) {
			capitan.Emit(ctx, CallbackFailed,
				KeySubject.Field(c.subject),
				KeyCallbackID.Field(h.id),
				KeyError.Field(err.Error()),
			)
		}
	}
}

// loop ticks until ctx is canceled by Stop.
func (r *Registry) loop(ctx context.Context, timer clockz.Timer) {
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C():
			if ctx.Err() != nil {
				return
			}
			r.Poll(context.WithoutCancel(ctx))
			timer.Reset(r.interval)
		}
	}
}

// startLocked schedules the loop and reports whether it did. r.mu must be held.
func (r *Registry) startLocked() bool {
	if r.syncMode || r.state == StateRunning {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.state = StateRunning
	go r.loop(ctx, r.clock.NewTimer(r.interval))
	return true
}

// lookupOrCreate returns the named subject, creating it with value when absent.
// r.mu must be held.
func (r *Registry) lookupOrCreate(name string, value any) (*subject, bool) {
	if s, ok := r.index[name]; ok {
		return s, false
	}
	s := newSubject(name, value)
	r.index[name] = s
	r.subjects = append(r.subjects, s)
	return s, true
}

func (r *Registry) emitStarted(ctx context.Context) {
	capitan.Emit(ctx, RegistryStarted,
		KeyState.Field(StateRunning.String()),
		KeyPollInterval.Field(r.interval),
	)
}

func (r *Registry) reject(ctx context.Context, op string, err error) {
	capitan.Emit(ctx, SubjectRejected,
		KeyOperation.Field(op),
		KeyError.Field(err.Error()),
	)
}

func blank(name string) bool {
	return strings.TrimSpace(name) == ""
}
