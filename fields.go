package beacon

import "github.com/zoobzio/capitan"

// Field keys for registry events.
var (
	// KeySubject is the subject name.
	KeySubject = capitan.NewStringKey("subject")

	// KeyCallbackID is the identity of a subscribed callback.
	KeyCallbackID = capitan.NewStringKey("callback_id")

	// KeyOperation names the registry operation that emitted the event.
	KeyOperation = capitan.NewStringKey("operation")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyState is the registry state after a lifecycle transition.
	KeyState = capitan.NewStringKey("state")

	// KeyPollInterval is the configured tick period.
	KeyPollInterval = capitan.NewDurationKey("poll_interval")

	// KeySubscribers is the number of callbacks attached to a subject.
	KeySubscribers = capitan.NewIntKey("subscribers")

	// KeyCleared is the number of subjects discarded by Stop.
	KeyCleared = capitan.NewIntKey("cleared")

	// KeyContentType is the content type of the codec used by a source.
	KeyContentType = capitan.NewStringKey("content_type")
)
