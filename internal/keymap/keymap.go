package keymap

import "strings"

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback", "queue"
}

// All contains every key binding. Queue panel keys are handled by the panel
// itself and listed here for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "quit", "global"},
	{[]string{"esc"}, ActionDismiss, "dismiss message", "global"},

	// Playback
	{[]string{"space", " "}, ActionPlayPause, "play/pause", "playback"},
	{[]string{"S"}, ActionStop, "stop", "playback"},
	{[]string{"n"}, ActionNext, "next", "playback"},
	{[]string{"p"}, ActionPrev, "previous", "playback"},
	{[]string{"s"}, ActionShuffle, "shuffle", "playback"},
	{[]string{"l"}, ActionToggleLoop, "loop", "playback"},
	{[]string{"x"}, ActionClear, "clear", "playback"},

	// Queue panel
	{[]string{"enter"}, ActionPlaySelected, "play", "queue"},
	{[]string{"d", "delete"}, ActionRemove, "remove", "queue"},
	{[]string{"D"}, ActionRemoveNamed, "remove all", "queue"},
	{[]string{"J", "shift+down"}, ActionMoveDown, "move down", "queue"},
	{[]string{"K", "shift+up"}, ActionMoveUp, "move up", "queue"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Hints renders "key description" pairs for the given contexts, using the
// first key of each binding.
func Hints(contexts ...string) string {
	var parts []string
	for _, context := range contexts {
		for _, kb := range ByContext(context) {
			parts = append(parts, kb.Keys[0]+" "+kb.Description)
		}
	}
	return strings.Join(parts, "  ")
}
