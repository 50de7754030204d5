// internal/player/state.go
package player

// State represents the playback state machine.
//
//	Stopped --play--> Playing --pause--> Paused
//	   ^                 |                 |
//	   +------stop-------+------stop-------+
//
// Paused returns to Playing through Resume. Toggle flips Playing and Paused
// and is a no-op when Stopped. Play always stops the current track first.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
