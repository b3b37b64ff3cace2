package beacon

import "testing"

func TestDefault_IsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("expected Default to return the same registry")
	}
}

func TestDefault_PackageFunctions(t *testing.T) {
	const name = "default-counter"
	defer DestroySubject(name)

	calls := make(chan call, 4)
	sub := Subscribe(name, func(prev, cur any) error {
		calls <- call{prev, cur}
		return nil
	})
	Mutate(name, 1)

	if c := receiveCall(t, calls); c != (call{nil, 1}) {
		t.Errorf("expected (nil, 1), got %v", c)
	}

	s, ok := GetSubject(name)
	if !ok || s.Cur != 1 {
		t.Errorf("unexpected subject %+v", s)
	}

	Unsubscribe(sub)
	Stop(false)
	if Default().State() != StateStopped {
		t.Errorf("expected default registry stopped, got %s", Default().State())
	}
}
