package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavesq/internal/playback"
	"github.com/llehouerou/wavesq/internal/ui"
)

// JumpToTrackMsg is sent when the user selects a track to play.
type JumpToTrackMsg struct {
	Index int
}

// RemoveTrackMsg asks for the entry at Index to be removed.
type RemoveTrackMsg struct {
	Index int
}

// RemoveNamedMsg asks for every entry called Name to be removed.
type RemoveNamedMsg struct {
	Name string
}

// MoveTrackMsg asks for the entry at From to be moved to To.
type MoveTrackMsg struct {
	From, To int
}

// Model is the scrollable queue list. It renders the last snapshot it was
// given and never edits the queue itself.
type Model struct {
	snap    playback.Snapshot
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

// New creates an empty, focused queue panel.
func New() Model {
	return Model{focused: true}
}

// SetSnapshot replaces the rendered queue state.
func (m *Model) SetSnapshot(snap playback.Snapshot) {
	m.snap = snap
	m.clampCursor()
}

// Snapshot returns the rendered queue state.
func (m Model) Snapshot() playback.Snapshot {
	return m.snap
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// Update handles messages for the queue panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	n := len(m.snap.Names)
	switch keyMsg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
		m.offset = 0
	case "G", "end":
		m.moveCursor(n)
	case "c":
		m.SyncCursor()
	case "enter":
		if n > 0 {
			idx := m.cursor
			return m, func() tea.Msg { return JumpToTrackMsg{Index: idx} }
		}
	case "d", "delete":
		if n > 0 {
			idx := m.cursor
			return m, func() tea.Msg { return RemoveTrackMsg{Index: idx} }
		}
	case "D":
		if n > 0 {
			name := m.snap.Names[m.cursor]
			return m, func() tea.Msg { return RemoveNamedMsg{Name: name} }
		}
	case "J", "shift+down":
		return m.move(1)
	case "K", "shift+up":
		return m.move(-1)
	}

	return m, nil
}

// move requests relocating the cursor entry and lets the cursor follow it.
func (m Model) move(delta int) (Model, tea.Cmd) {
	from, to := m.cursor, m.cursor+delta
	if to < 0 || to >= len(m.snap.Names) {
		return m, nil
	}
	m.cursor = to
	m.ensureCursorVisible()
	return m, func() tea.Msg { return MoveTrackMsg{From: from, To: to} }
}

func (m Model) listHeight() int {
	return m.height - ui.PanelOverhead
}
