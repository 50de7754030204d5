// Package stderr redirects file descriptor 2 into a channel while the TUI
// owns the terminal. The audio backend's C code writes to fd 2 directly,
// bypassing os.Stderr, and would otherwise tear the layout.
package stderr

// Capture holds a redirected stderr. The zero value is inert.
type Capture struct {
	lines chan string
	stop  func()
}

// Lines delivers captured lines until Close. It is nil when nothing is
// being captured.
func (c *Capture) Lines() <-chan string {
	if c == nil {
		return nil
	}
	return c.lines
}

// Close restores the original stderr. Safe to call more than once.
func (c *Capture) Close() {
	if c == nil || c.stop == nil {
		return
	}
	c.stop()
	c.stop = nil
}
