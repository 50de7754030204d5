//go:build linux

package mpris

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/wavesq/internal/playback"
)

// Adapter exposes a playback service as an MPRIS media player over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(service playback.Service) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("wavesq", &rootAdapter{}, &playerAdapter{service: service}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "wavesq", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter plus the loop
// and shuffle extensions.
type playerAdapter struct {
	service playback.Service
}

func (p *playerAdapter) Next() error {
	return ignoreQueueEnd(p.service.Next())
}

func (p *playerAdapter) Previous() error {
	return ignoreQueueEnd(p.service.Previous())
}

func (p *playerAdapter) Pause() error {
	p.service.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	if p.service.State() == playback.StateStopped {
		return p.service.Play()
	}
	p.service.Toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.service.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	switch p.service.State() {
	case playback.StateStopped:
		return p.service.Play()
	case playback.StatePaused:
		p.service.Toggle()
	case playback.StatePlaying:
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.service.State() {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.service.Snapshot()
	info := p.service.TrackInfo()
	if info == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(info.Path)),
		Length:      types.Microseconds(p.service.Duration().Microseconds()),
		Title:       info.Title,
		Album:       info.Album,
		TrackNumber: info.Track,
	}
	if meta.Title == "" {
		meta.Title = snap.Current
	}
	if info.Artist != "" {
		meta.Artist = []string{info.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	snap := p.service.Snapshot()
	if len(snap.Names) == 0 {
		return false, nil
	}
	// A removed current entry leaves Index on the entry that follows it.
	last := len(snap.Names) - 1
	if snap.Removed {
		last++
	}
	return snap.Loop || snap.Index < last, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	snap := p.service.Snapshot()
	if len(snap.Names) == 0 {
		return false, nil
	}
	return snap.Loop || snap.Index > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.service.Snapshot().Names) > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.service.Loop() {
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Single-track repeat is not supported and maps to looping the queue.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.service.SetLoop(status != types.LoopStatusNone)
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle. Shuffling
// reorders the queue once, so there is no persistent mode to report.
func (p *playerAdapter) Shuffle() (bool, error) {
	return false, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if shuffle {
		p.service.Shuffle()
	}
	return nil
}

// ignoreQueueEnd treats hitting a queue boundary as a successful no-op.
func ignoreQueueEnd(err error) error {
	if errors.Is(err, playback.ErrQueueEnd) {
		return nil
	}
	return err
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
