package queuepanel

// SyncCursor moves the cursor to the current track.
func (m *Model) SyncCursor() {
	if m.snap.Removed {
		return
	}
	if idx := m.snap.Index; idx >= 0 && idx < len(m.snap.Names) {
		m.cursor = idx
		m.ensureCursorVisible()
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.snap.Names) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.snap.Names)-1)
	m.ensureCursorVisible()
}

// clampCursor keeps the cursor on a row after the queue shrank.
func (m *Model) clampCursor() {
	switch n := len(m.snap.Names); {
	case n == 0:
		m.cursor = 0
		m.offset = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts the scroll offset to keep the cursor in view.
func (m *Model) ensureCursorVisible() {
	listHeight := m.listHeight()
	if listHeight <= 0 {
		return
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
	m.offset = max(min(m.offset, len(m.snap.Names)-listHeight), 0)
}
