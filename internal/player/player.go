package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// ErrUnsupportedFormat is returned by Play for files no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

const resampleQuality = 4

type Player struct {
	mu         sync.Mutex
	state      State
	ctrl       *beep.Ctrl
	streamer   beep.StreamSeekCloser
	format     beep.Format
	file       *os.File
	trackInfo  *TrackInfo
	finishedCh chan struct{}

	speakerRate beep.SampleRate
}

type TrackInfo struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Year     int
	Track    int
	Duration time.Duration
}

func New() *Player {
	return &Player{
		state:      Stopped,
		finishedCh: make(chan struct{}, 1),
	}
}

// Play stops whatever is playing and starts the file at location.
func (p *Player) Play(location string) error {
	p.Stop()

	f, err := os.Open(location)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, location)
	if err != nil {
		f.Close()
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.speakerRate == 0 {
		err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.speakerRate = format.SampleRate
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer}

	info, _ := ReadTrackInfo(location)
	if info == nil {
		info = &TrackInfo{Path: location, Title: filepath.Base(location)}
	}
	info.Duration = format.SampleRate.D(streamer.Len())
	p.trackInfo = info
	p.state = Playing

	var out beep.Streamer = p.ctrl
	if format.SampleRate != p.speakerRate {
		out = beep.Resample(resampleQuality, format.SampleRate, p.speakerRate, p.ctrl)
	}
	speaker.Play(beep.Seq(out, beep.Callback(p.signalFinished)))

	return nil
}

// signalFinished runs on the speaker goroutine, which holds the speaker lock,
// so it only hands off to FinishedChan.
func (p *Player) signalFinished() {
	select {
	case p.finishedCh <- struct{}{}:
	default:
	}
}

// Stop stops playback and releases the open file.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.trackInfo = nil
	p.state = Stopped
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanResume() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

func (p *Player) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
	}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trackInfo
}

func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}

func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}
