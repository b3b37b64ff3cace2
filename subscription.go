package beacon

import "strings"

// Subscription identifies one callback attached to one subject. It is
// returned by Subscribe and only used to Unsubscribe that callback.
type Subscription struct {
	subject string
	id      string
}

// Subject returns the name of the subject the callback is attached to.
func (s *Subscription) Subject() string {
	return s.subject
}

// ID returns the callback identity.
func (s *Subscription) ID() string {
	return s.id
}

func (s *Subscription) valid() bool {
	return s != nil && strings.TrimSpace(s.subject) != "" && s.id != ""
}
