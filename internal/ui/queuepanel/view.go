package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/wavesq/internal/icons"
	"github.com/llehouerou/wavesq/internal/playback"
	"github.com/llehouerou/wavesq/internal/ui"
	"github.com/llehouerou/wavesq/internal/ui/render"
	"github.com/llehouerou/wavesq/internal/ui/styles"
)

const prefixWidth = 2

// View renders the queue panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := m.width - ui.BorderWidth
	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderTrackList(innerWidth, m.listHeight())

	return styles.PanelStyle(m.focused).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders the position counter and the loop icon on the right.
func (m Model) renderHeader(innerWidth int) string {
	s := styles.T().S()
	n := len(m.snap.Names)

	var left string
	switch {
	case m.snap.Removed:
		left = fmt.Sprintf("Queue (-/%d)  %s %s", n, icons.Removed(), m.snap.Current)
	case n == 0:
		left = "Queue (0/0)"
	default:
		left = fmt.Sprintf("Queue (%d/%d)", m.snap.Index+1, n)
	}

	var right string
	if m.snap.Loop {
		right = icons.Loop() + " "
	}
	left = render.TruncateAndPad(left, innerWidth-ansi.StringWidth(right))

	header := s.Title.Render(left)
	if right != "" {
		header += s.Playing.Render(right)
	}
	return header
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	lines := make([]string, 0, max(listHeight, 0))
	for i := range listHeight {
		idx := i + m.offset
		if idx >= len(m.snap.Names) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderTrackLine(idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTrackLine(idx, width int) string {
	prefix := ""
	if m.isCurrent(idx) {
		prefix = icons.Playing()
		if m.snap.State == playback.StatePaused {
			prefix = icons.Paused()
		}
	}
	prefix = render.Pad(prefix, prefixWidth)

	name := icons.FormatTrack(render.Sanitize(m.snap.Names[idx]))
	line := prefix + render.TruncateAndPad(name, width-prefixWidth)

	return m.trackStyle(idx).Render(line)
}

// isCurrent reports whether idx is the live current entry.
func (m Model) isCurrent(idx int) bool {
	return !m.snap.Removed && idx == m.snap.Index
}

func (m Model) trackStyle(idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor && m.focused
	isPlaying := m.isCurrent(idx)
	isPlayed := idx < m.snap.Index

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor && isPlayed:
		return s.Cursor.Inherit(s.Subtle)
	case isCursor:
		return s.Cursor
	case isPlaying:
		return s.Playing
	case isPlayed:
		return s.Subtle
	default:
		return s.Base
	}
}
