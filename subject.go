package beacon

// Subject is a point-in-time view of a named value held by a Registry.
type Subject struct {
	Name        string
	Prev        any
	Cur         any
	Subscribers int
}

// subject is the registry-owned cell behind a Subject.
type subject struct {
	name      string
	prev      any
	cur       any
	callbacks []*handle
}

func newSubject(name string, value any) *subject {
	return &subject{name: name, cur: value}
}

func (s *subject) snapshot() Subject {
	return Subject{
		Name:        s.name,
		Prev:        s.prev,
		Cur:         s.cur,
		Subscribers: len(s.callbacks),
	}
}

func (s *subject) attach(h *handle) {
	s.callbacks = append(s.callbacks, h)
}

// detach removes the handle with the given id and reports whether it existed.
func (s *subject) detach(id string) bool {
	for i, h := range s.callbacks {
		if h.id != id {
			continue
		}
		h.detached.Store(true)
		s.callbacks = append(s.callbacks[:i:i], s.callbacks[i+1:]...)
		return true
	}
	return false
}

// detachAll marks every handle detached and drops them.
func (s *subject) detachAll() {
	for _, h := range s.callbacks {
		h.detached.Store(true)
	}
	s.callbacks = nil
}
