package beacon

import (
	"testing"
	"time"
)

func TestKeySubject(t *testing.T) {
	field := KeySubject.Field("count")
	if field.Key().Name() != "subject" {
		t.Errorf("expected key 'subject', got %q", field.Key().Name())
	}
}

func TestKeyCallbackID(t *testing.T) {
	field := KeyCallbackID.Field("abc")
	if field.Key().Name() != "callback_id" {
		t.Errorf("expected key 'callback_id', got %q", field.Key().Name())
	}
}

func TestKeyError(t *testing.T) {
	field := KeyError.Field("something went wrong")
	if field.Key().Name() != "error" {
		t.Errorf("expected key 'error', got %q", field.Key().Name())
	}
}

func TestKeyPollInterval(t *testing.T) {
	field := KeyPollInterval.Field(time.Millisecond)
	if field.Key().Name() != "poll_interval" {
		t.Errorf("expected key 'poll_interval', got %q", field.Key().Name())
	}
}

func TestKeySubscribers(t *testing.T) {
	field := KeySubscribers.Field(3)
	if field.Key().Name() != "subscribers" {
		t.Errorf("expected key 'subscribers', got %q", field.Key().Name())
	}
}
