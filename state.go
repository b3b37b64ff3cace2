package beacon

// State represents the lifecycle state of a Registry's poll loop.
type State int32

const (
	// StateStopped indicates no poll loop is scheduled. The next Mutate or
	// Subscribe starts one.
	StateStopped State = iota

	// StateRunning indicates the poll loop is scheduled and ticking.
	StateRunning
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
