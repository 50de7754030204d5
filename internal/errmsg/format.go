// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Queue operations
	OpQueueJump    Op = "jump in queue"
	OpQueueNext    Op = "skip to next track"
	OpQueuePrev    Op = "go back to previous track"
	OpQueueResolve Op = "find track"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// Library operations
	OpLibraryOpen Op = "open library index"
	OpLibraryScan Op = "scan library"

	// Desktop integration
	OpMprisStart Op = "start media controls"
	OpNotify     Op = "send notification"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// ForEvent maps a playback error event operation to its Op.
func ForEvent(operation string) Op {
	switch operation {
	case "resolve":
		return OpQueueResolve
	case "play":
		return OpPlaybackStart
	}
	return Op(operation)
}
