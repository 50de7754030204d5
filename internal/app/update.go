package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavesq/internal/errmsg"
	"github.com/llehouerou/wavesq/internal/keymap"
	"github.com/llehouerou/wavesq/internal/notify"
	"github.com/llehouerou/wavesq/internal/playback"
	"github.com/llehouerou/wavesq/internal/ui"
	"github.com/llehouerou/wavesq/internal/ui/playerbar"
	"github.com/llehouerou/wavesq/internal/ui/queuepanel"
	"github.com/llehouerou/wavesq/internal/ui/render"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ResizeComponents()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)
	case StderrMsg:
		m.ErrorMsg = render.Sanitize(msg.Line)
		return m, m.WatchStderr()
	case NotificationSentMsg:
		if msg.Err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpNotify, msg.Err)
			return m, nil
		}
		m.notifyID = msg.ID
		return m, nil
	case queuepanel.JumpToTrackMsg:
		m.report(errmsg.OpQueueJump, m.Playback.PlayAt(msg.Index))
		return m, nil
	case queuepanel.RemoveTrackMsg:
		m.Playback.RemoveAt(msg.Index)
		return m, nil
	case queuepanel.RemoveNamedMsg:
		m.Playback.RemoveNamed(msg.Name, false)
		return m, nil
	case queuepanel.MoveTrackMsg:
		m.Playback.Move(msg.From, msg.To)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionPlayPause:
		if m.Playback.State() == playback.StateStopped {
			m.report(errmsg.OpPlaybackStart, m.Playback.Play())
		} else {
			m.Playback.Toggle()
		}
	case keymap.ActionStop:
		m.Playback.Stop()
	case keymap.ActionNext:
		m.report(errmsg.OpQueueNext, m.Playback.Next())
	case keymap.ActionPrev:
		m.report(errmsg.OpQueuePrev, m.Playback.Previous())
	case keymap.ActionShuffle:
		m.Playback.Shuffle()
		m.StatusMsg = "Queue shuffled"
	case keymap.ActionToggleLoop:
		if m.Playback.ToggleLoop() {
			m.StatusMsg = "Loop on"
		} else {
			m.StatusMsg = "Loop off"
		}
		m.refresh()
	case keymap.ActionClear:
		m.Playback.Clear()
	case keymap.ActionDismiss:
		m.ErrorMsg = ""
		m.StatusMsg = ""
	default:
		var cmd tea.Cmd
		m.Queue, cmd = m.Queue.Update(msg)
		return m, cmd
	}
	return m, nil
}

// report shows err in the status line. Hitting either end of the queue is
// not an error worth surfacing.
func (m *Model) report(op errmsg.Op, err error) {
	switch {
	case err == nil:
		m.ErrorMsg = ""
	case errors.Is(err, playback.ErrQueueEnd):
		m.StatusMsg = "End of queue"
	default:
		m.ErrorMsg = errmsg.Format(op, err)
	}
}

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ServiceQueueChangedMsg:
		m.refresh()
	case ServiceCurrentRemovedMsg:
		m.refresh()
		m.StatusMsg = fmt.Sprintf("Removed %q (still playing)", msg.Name)
	case ServiceTrackChangedMsg:
		m.refresh()
		m.Queue.SyncCursor()
		m.StatusMsg = ""
		cmds := []tea.Cmd{m.WatchServiceEvents()}
		if m.Notifier != nil {
			n := notify.NowPlaying(msg.Name, m.Playback.TrackInfo(), m.notifyID)
			cmds = append(cmds, notifyCmd(m.Notifier, n))
		}
		return m, tea.Batch(cmds...)
	case ServiceStateChangedMsg:
		m.refresh()
		m.ResizeComponents()
		cmds := []tea.Cmd{m.WatchServiceEvents()}
		if msg.Current == playback.StatePlaying && !m.ticking {
			m.ticking = true
			cmds = append(cmds, TickCmd())
		}
		return m, tea.Batch(cmds...)
	case ServiceErrorMsg:
		m.ErrorMsg = errmsg.FormatWith(errmsg.ForEvent(msg.Operation), msg.Name, msg.Err)
	case ServiceClosedMsg:
		return m, nil
	case TickMsg:
		if m.Playback.State() == playback.StatePlaying {
			return m, TickCmd()
		}
		m.ticking = false
		return m, nil
	}
	return m, m.WatchServiceEvents()
}

// ResizeComponents gives the queue panel whatever the player bar and the
// status line leave.
func (m *Model) ResizeComponents() {
	height := m.Height - ui.StatusHeight
	if m.Playback.State() != playback.StateStopped {
		height -= playerbar.Height
	}
	m.Queue.SetSize(m.Width, max(height, 0))
}
