package playerbar

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavesq/internal/icons"
	"github.com/llehouerou/wavesq/internal/player"
	"github.com/llehouerou/wavesq/internal/ui/render"
)

// Height is the player bar height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Playing  bool
	Paused   bool
	Name     string // queue name, shown when the file has no title tag
	Title    string
	Artist   string
	Album    string
	Year     int
	Position time.Duration
	Duration time.Duration
}

// Source is the part of the playback service the bar reads from.
type Source interface {
	TrackInfo() *player.TrackInfo
	Position() time.Duration
	Duration() time.Duration
}

// NewState builds a State for the current track. playing and paused come
// from the service state; name is the queue entry being played.
func NewState(src Source, name string, playing, paused bool) State {
	if !playing && !paused {
		return State{}
	}

	s := State{
		Playing:  playing,
		Paused:   paused,
		Name:     name,
		Position: src.Position(),
		Duration: src.Duration(),
	}
	if info := src.TrackInfo(); info != nil {
		s.Title = info.Title
		s.Artist = info.Artist
		s.Album = info.Album
		s.Year = info.Year
		if s.Name == "" {
			s.Name = strings.TrimSuffix(filepath.Base(info.Path), filepath.Ext(info.Path))
		}
	}
	return s
}

// Render returns the player bar string for the given width.
// Returns empty string when stopped.
func Render(s State, width int) string {
	if !s.Playing && !s.Paused {
		return ""
	}

	innerWidth := max(width-6, 0)

	status := icons.Playing()
	if s.Paused {
		status = icons.Paused()
	}

	title := s.Title
	if title == "" {
		title = s.Name
	}
	if title == "" {
		title = "Unknown Track"
	}

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	if s.Year > 0 {
		infoParts = append(infoParts, strconv.Itoa(s.Year))
	}
	info := strings.Join(infoParts, " · ")

	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))

	separator := "   "
	sepWidth := lipgloss.Width(separator)
	timeWidth := lipgloss.Width(timeStr)
	statusWidth := lipgloss.Width(status + "  ")
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	const minBarWidth = 10
	availableForContent := innerWidth - statusWidth - timeWidth - sepWidth*2 - minBarWidth

	var styledTitle, styledInfo string
	var usedContentWidth int

	switch {
	case info != "" && titleWidth+sepWidth+infoWidth <= availableForContent:
		styledTitle = titleStyle().Render(title)
		styledInfo = artistStyle().Render(info)
		usedContentWidth = titleWidth + sepWidth + infoWidth
	case info != "" && titleWidth+sepWidth < availableForContent:
		maxInfo := availableForContent - titleWidth - sepWidth
		styledTitle = titleStyle().Render(title)
		styledInfo = artistStyle().Render(render.TruncateStyled(info, maxInfo))
		usedContentWidth = titleWidth + sepWidth + maxInfo
	default:
		maxTitle := max(availableForContent, 10)
		styledTitle = titleStyle().Render(render.TruncateStyled(title, maxTitle))
		usedContentWidth = min(titleWidth, maxTitle)
	}

	barWidth := max(innerWidth-usedContentWidth-statusWidth-timeWidth-sepWidth*2, 5)

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)
	filledBar := progressBarFilled().Render(strings.Repeat("━", filled))
	emptyBar := progressBarEmpty().Render(strings.Repeat("─", barWidth-filled))

	// Title   Info   ▶  ━━━───   1:23 / 3:58
	var content strings.Builder
	content.WriteString(styledTitle)
	if styledInfo != "" {
		content.WriteString(separator)
		content.WriteString(styledInfo)
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(filledBar)
	content.WriteString(emptyBar)
	content.WriteString(separator)
	content.WriteString(progressTimeStyle().Render(timeStr))

	return barStyle().Padding(0, 2).Width(width - 2).Render(content.String())
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
