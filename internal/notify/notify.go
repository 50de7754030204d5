// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"strings"

	"github.com/llehouerou/wavesq/internal/player"
)

// Urgency represents notification priority levels as defined by org.freedesktop.Notifications.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	appName = "wavesq"
	// trackTimeout is how long a now-playing notification stays up, in ms.
	trackTimeout = 4000
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns the server-assigned ID.
	Notify(n Notification) (uint32, error)
	// Close dismisses a notification. ID 0 is ignored.
	Close(id uint32) error
}

// NowPlaying builds the notification for a track that just started. It
// replaces the previous now-playing notification when replaces is non-zero.
func NowPlaying(name string, info *player.TrackInfo, replaces uint32) Notification {
	n := Notification{
		Title:      name,
		Icon:       "audio-x-generic",
		Timeout:    trackTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
	if info == nil {
		return n
	}
	if info.Title != "" {
		n.Title = info.Title
	}
	var parts []string
	if info.Artist != "" {
		parts = append(parts, info.Artist)
	}
	if info.Album != "" {
		parts = append(parts, info.Album)
	}
	n.Body = strings.Join(parts, " - ")
	return n
}
