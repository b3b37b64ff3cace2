package beacon

import "testing"

func TestRegistryStarted(t *testing.T) {
	if RegistryStarted.Name() != "beacon.registry.started" {
		t.Errorf("expected name 'beacon.registry.started', got %q", RegistryStarted.Name())
	}
}

func TestRegistryStopped(t *testing.T) {
	if RegistryStopped.Name() != "beacon.registry.stopped" {
		t.Errorf("expected name 'beacon.registry.stopped', got %q", RegistryStopped.Name())
	}
}

func TestSubjectCreated(t *testing.T) {
	if SubjectCreated.Name() != "beacon.subject.created" {
		t.Errorf("expected name 'beacon.subject.created', got %q", SubjectCreated.Name())
	}
}

func TestSubjectDestroyed(t *testing.T) {
	if SubjectDestroyed.Name() != "beacon.subject.destroyed" {
		t.Errorf("expected name 'beacon.subject.destroyed', got %q", SubjectDestroyed.Name())
	}
}

func TestSubjectRejected(t *testing.T) {
	if SubjectRejected.Name() != "beacon.subject.rejected" {
		t.Errorf("expected name 'beacon.subject.rejected', got %q", SubjectRejected.Name())
	}
}

func TestSubjectChanged(t *testing.T) {
	if SubjectChanged.Name() != "beacon.subject.changed" {
		t.Errorf("expected name 'beacon.subject.changed', got %q", SubjectChanged.Name())
	}
}

func TestSubscriptionAdded(t *testing.T) {
	if SubscriptionAdded.Name() != "beacon.subscription.added" {
		t.Errorf("expected name 'beacon.subscription.added', got %q", SubscriptionAdded.Name())
	}
}

func TestSubscriptionRemoved(t *testing.T) {
	if SubscriptionRemoved.Name() != "beacon.subscription.removed" {
		t.Errorf("expected name 'beacon.subscription.removed', got %q", SubscriptionRemoved.Name())
	}
}

func TestSubscriptionRejected(t *testing.T) {
	if SubscriptionRejected.Name() != "beacon.subscription.rejected" {
		t.Errorf("expected name 'beacon.subscription.rejected', got %q", SubscriptionRejected.Name())
	}
}

func TestCallbackFailed(t *testing.T) {
	if CallbackFailed.Name() != "beacon.callback.failed" {
		t.Errorf("expected name 'beacon.callback.failed', got %q", CallbackFailed.Name())
	}
}

func TestCallbackRecovered(t *testing.T) {
	if CallbackRecovered.Name() != "beacon.callback.recovered" {
		t.Errorf("expected name 'beacon.callback.recovered', got %q", CallbackRecovered.Name())
	}
}

func TestSourceDecodeFailed(t *testing.T) {
	if SourceDecodeFailed.Name() != "beacon.source.decode.failed" {
		t.Errorf("expected name 'beacon.source.decode.failed', got %q", SourceDecodeFailed.Name())
	}
}

func TestSourceClosed(t *testing.T) {
	if SourceClosed.Name() != "beacon.source.closed" {
		t.Errorf("expected name 'beacon.source.closed', got %q", SourceClosed.Name())
	}
}
