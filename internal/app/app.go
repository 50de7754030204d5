// Package app is the terminal front end: a bubbletea model that renders the
// queue and drives the playback service from key presses.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavesq/internal/keymap"
	"github.com/llehouerou/wavesq/internal/notify"
	"github.com/llehouerou/wavesq/internal/playback"
	"github.com/llehouerou/wavesq/internal/ui/queuepanel"
)

// Model is the root application model.
type Model struct {
	Playback playback.Service
	Queue    queuepanel.Model
	Notifier notify.Notifier // nil disables notifications
	Stderr   <-chan string   // captured audio backend output, may be nil

	ErrorMsg  string
	StatusMsg string
	Width     int
	Height    int

	keys     *keymap.Resolver
	sub      *playback.Subscription
	notifyID uint32
	ticking  bool
}

// New creates the application model and subscribes it to svc.
func New(svc playback.Service, notifier notify.Notifier) Model {
	m := Model{
		Playback: svc,
		Queue:    queuepanel.New(),
		Notifier: notifier,
		keys:     keymap.NewResolver(append(keymap.ByContext("global"), keymap.ByContext("playback")...)),
		sub:      svc.Subscribe(),
	}
	m.refresh()
	m.Queue.SyncCursor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchServiceEvents(), m.WatchStderr())
}

// Close detaches the model from the playback service.
func (m Model) Close() {
	m.Playback.Unsubscribe(m.sub)
}

// DismissNotification closes the last now-playing notification.
func (m Model) DismissNotification() error {
	if m.Notifier == nil {
		return nil
	}
	return m.Notifier.Close(m.notifyID)
}

// refresh pulls a fresh snapshot into the queue panel.
func (m *Model) refresh() {
	m.Queue.SetSnapshot(m.Playback.Snapshot())
}
