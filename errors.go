package beacon

import (
	"errors"
	"fmt"
)

// Argument errors. These are never returned from Registry operations; their
// text is carried by the rejection signals.
var (
	ErrBlankName           = errors.New("subject name is blank")
	ErrNilCallback         = errors.New("callback is nil")
	ErrInvalidSubscription = errors.New("subscription is invalid")
	ErrNilSource           = errors.New("source is nil")
)

// ErrEmptyPayload is returned by the codecs for blank input.
var ErrEmptyPayload = errors.New("payload is empty")

// ErrCallbackPanic wraps the value recovered from a panicking callback.
var ErrCallbackPanic = errors.New("callback panicked")

// CallbackError describes a single failed callback invocation.
type CallbackError struct {
	Subject    string
	CallbackID string
	Err        error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("subject %q callback %s: %v", e.Subject, e.CallbackID, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}
