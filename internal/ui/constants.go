// Package ui holds layout sizes shared by the TUI components.
package ui

const (
	// BorderWidth and BorderHeight are what a rounded panel border takes
	// from each dimension.
	BorderWidth  = 2
	BorderHeight = 2

	// HeaderHeight covers a panel title and the separator under it.
	HeaderHeight = 2

	// PanelOverhead is the number of rows a panel keeps for itself.
	PanelOverhead = BorderHeight + HeaderHeight

	// StatusHeight is the status line under the queue.
	StatusHeight = 1
)
