// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionDismiss Action = "dismiss"

	// Playback actions
	ActionPlayPause Action = "play_pause"
	ActionStop      Action = "stop"
	ActionNext      Action = "next"
	ActionPrev      Action = "prev"

	// Queue actions
	ActionShuffle    Action = "shuffle"
	ActionToggleLoop Action = "toggle_loop"
	ActionClear      Action = "clear"

	// Queue panel actions
	ActionPlaySelected Action = "play_selected"
	ActionRemove       Action = "remove"
	ActionRemoveNamed  Action = "remove_named"
	ActionMoveDown     Action = "move_down"
	ActionMoveUp       Action = "move_up"
)
