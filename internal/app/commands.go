package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavesq/internal/notify"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchServiceEvents returns a command that waits for the next playback
// service event. Each handler re-arms it.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg(e)
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg(e)
		case e := <-sub.CurrentRemoved:
			return ServiceCurrentRemovedMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchStderr returns a command that waits for the next captured stderr line.
func (m Model) WatchStderr() tea.Cmd {
	if m.Stderr == nil {
		return nil
	}
	lines := m.Stderr
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// notifyCmd sends a now-playing notification off the update loop.
func notifyCmd(n notify.Notifier, notification notify.Notification) tea.Cmd {
	return func() tea.Msg {
		id, err := n.Notify(notification)
		return NotificationSentMsg{ID: id, Err: err}
	}
}
