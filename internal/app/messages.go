package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavesq/internal/playback"
)

// PlaybackMessage is implemented by messages coming from the playback service.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// TickMsg is sent periodically to update the progress bar.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// ServiceStateChangedMsg is sent when the player state changes.
type ServiceStateChangedMsg playback.StateChange

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when a new track starts.
type ServiceTrackChangedMsg playback.TrackChange

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceQueueChangedMsg is sent when the queue contents change.
type ServiceQueueChangedMsg playback.QueueChange

func (ServiceQueueChangedMsg) playbackMessage() {}

// ServiceCurrentRemovedMsg is sent when the current track is removed from the queue.
type ServiceCurrentRemovedMsg playback.CurrentRemoval

func (ServiceCurrentRemovedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when the service skips or fails to play a track.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the playback service is closed.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// NotificationSentMsg carries the ID of the last now-playing notification.
type NotificationSentMsg struct {
	ID  uint32
	Err error
}

// StderrMsg carries a line the audio backend wrote to stderr.
type StderrMsg struct {
	Line string
}
