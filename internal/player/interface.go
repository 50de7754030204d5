// internal/player/interface.go
package player

import "time"

// Interface is what the playback service needs from an audio backend.
type Interface interface {
	Play(location string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	TrackInfo() *TrackInfo
	Position() time.Duration
	Duration() time.Duration
	// FinishedChan receives a value each time a track plays to its end.
	FinishedChan() <-chan struct{}
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
