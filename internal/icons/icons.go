package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio   string
	Playing string
	Paused  string
	Removed string
	Loop    string
}

var (
	nerdIcons = Icons{
		Audio:   "\uf001 ", // nf-fa-music
		Playing: "󰐊",       // nf-md-play
		Paused:  "󰏤",       // nf-md-pause
		Removed: "󰆴",       // nf-md-delete
		Loop:    "󰑖",       // nf-md-repeat
	}

	unicodeIcons = Icons{
		Audio:   "🎵 ",
		Playing: "▶",
		Paused:  "⏸",
		Removed: "✗",
		Loop:    "🔁",
	}

	noneIcons = Icons{
		Audio:   "",
		Playing: ">",
		Paused:  "=",
		Removed: "x",
		Loop:    "[L]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatTrack formats a queued track name with the appropriate icon.
func FormatTrack(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// Playing returns the playing indicator.
func Playing() string {
	return current.Playing
}

// Paused returns the paused indicator.
func Paused() string {
	return current.Paused
}

// Removed marks a current track that was removed from the queue.
func Removed() string {
	return current.Removed
}

// Loop returns the loop mode icon.
func Loop() string {
	return current.Loop
}
