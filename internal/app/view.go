package app

import (
	"github.com/llehouerou/wavesq/internal/keymap"
	"github.com/llehouerou/wavesq/internal/playback"
	"github.com/llehouerou/wavesq/internal/ui/playerbar"
	"github.com/llehouerou/wavesq/internal/ui/render"
	"github.com/llehouerou/wavesq/internal/ui/styles"
)

var keyHints = keymap.Hints("playback", "queue", "global")

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.Queue.View()

	snap := m.Queue.Snapshot()
	state := m.Playback.State()
	bar := playerbar.Render(
		playerbar.NewState(m.Playback, snap.Current,
			state == playback.StatePlaying, state == playback.StatePaused),
		m.Width,
	)
	if bar != "" {
		view += "\n" + bar
	}

	return view + "\n" + m.renderStatus()
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	switch {
	case m.ErrorMsg != "":
		return s.Error.Render(render.TruncateAndPad(m.ErrorMsg, m.Width))
	case m.StatusMsg != "":
		return s.Muted.Render(render.TruncateAndPad(m.StatusMsg, m.Width))
	default:
		return s.Subtle.Render(render.TruncateAndPad(keyHints, m.Width))
	}
}
