package beacon

import "github.com/zoobzio/capitan"

// Registry lifecycle signals.
var (
	// RegistryStarted is emitted when the poll loop starts.
	RegistryStarted = capitan.NewSignal(
		"beacon.registry.started",
		"Poll loop started",
	)

	// RegistryStopped is emitted when the poll loop is stopped.
	RegistryStopped = capitan.NewSignal(
		"beacon.registry.stopped",
		"Poll loop stopped",
	)
)

// Subject signals.
var (
	// SubjectCreated is emitted when a name is seen for the first time.
	SubjectCreated = capitan.NewSignal(
		"beacon.subject.created",
		"Subject created",
	)

	// SubjectDestroyed is emitted when a subject is removed by name.
	SubjectDestroyed = capitan.NewSignal(
		"beacon.subject.destroyed",
		"Subject destroyed",
	)

	// SubjectRejected is emitted when an operation receives a blank name or a
	// nil callback.
	SubjectRejected = capitan.NewSignal(
		"beacon.subject.rejected",
		"Subject operation rejected",
	)

	// SubjectChanged is emitted once per tick for every subject whose value
	// changed and is about to be dispatched.
	SubjectChanged = capitan.NewSignal(
		"beacon.subject.changed",
		"Subject change dispatched",
	)
)

// Subscription signals.
var (
	SubscriptionAdded = capitan.NewSignal(
		"beacon.subscription.added",
		"Callback subscribed",
	)

	SubscriptionRemoved = capitan.NewSignal(
		"beacon.subscription.removed",
		"Callback unsubscribed",
	)

	// SubscriptionRejected is emitted when Unsubscribe receives a malformed
	// token.
	SubscriptionRejected = capitan.NewSignal(
		"beacon.subscription.rejected",
		"Unsubscribe rejected",
	)
)

// Callback signals.
var (
	// CallbackFailed is emitted the first time a callback fails. Further
	// failures of the same callback are not emitted until it succeeds again.
	CallbackFailed = capitan.NewSignal(
		"beacon.callback.failed",
		"Callback failed",
	)

	// CallbackRecovered is emitted when a previously failing callback succeeds.
	CallbackRecovered = capitan.NewSignal(
		"beacon.callback.recovered",
		"Callback recovered",
	)
)

// Source signals.
var (
	SourceDecodeFailed = capitan.NewSignal(
		"beacon.source.decode.failed",
		"Source payload could not be decoded",
	)

	SourceClosed = capitan.NewSignal(
		"beacon.source.closed",
		"Source stopped emitting",
	)
)
