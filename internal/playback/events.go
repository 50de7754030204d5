package playback

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a queue entry.
//
// Navigation alone does not emit it; only starting playback does, so
// skipping through the queue while stopped stays quiet.
type TrackChange struct {
	Name     string
	Location string
	Index    int
}

// QueueChange is emitted after every structural edit of the queue.
// Names holds the addressable entries; Index is the cursor after the edit.
type QueueChange struct {
	Names []string
	Index int
}

// CurrentRemoval is emitted when the current entry is removed or cleared.
// Playback of that entry is not interrupted.
type CurrentRemoval struct {
	Name string
}

// ErrorEvent is emitted when a track cannot be resolved or played.
type ErrorEvent struct {
	Operation string // "resolve" or "play"
	Name      string
	Err       error
}

// Snapshot is a consistent read of the queue and playback state.
type Snapshot struct {
	Names   []string
	Current string // name under the cursor, "" when the queue is empty
	Index   int
	Removed bool // the current entry was removed and is kept until the cursor moves
	Loop    bool
	State   State
}
