package playback

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/llehouerou/wavesq/internal/player"
	"github.com/llehouerou/wavesq/internal/playlist"
)

var (
	// ErrEmptyQueue is returned when there is nothing to play.
	ErrEmptyQueue = errors.New("queue is empty")
	// ErrUnresolvable is returned when no queued track resolves to a playable location.
	ErrUnresolvable = errors.New("no playable track")
	// ErrQueueEnd is returned when navigation cannot move past a boundary.
	ErrQueueEnd = errors.New("end of queue")
)

// Service serializes access to a play queue and drives a player from it.
type Service interface {
	// Playback control
	Play() error
	PlayAt(index int) error
	Pause()
	Toggle()
	Stop()
	Next() error
	Previous() error
	JumpTo(index int) error // starts playback if active

	// Queue manipulation
	Append(names ...string)
	Insert(name string, index int)
	RemoveAt(index int)
	RemoveNamed(name string, firstOnly bool)
	Move(from, to int)
	Shuffle()
	Clear()

	// Mode control
	Loop() bool
	SetLoop(loop bool)
	ToggleLoop() bool

	// State queries
	State() State
	Snapshot() Snapshot
	Position() time.Duration
	Duration() time.Duration
	TrackInfo() *player.TrackInfo

	// Event subscription
	Subscribe() *Subscription
	Unsubscribe(sub *Subscription)

	// Lifecycle
	Close() error
}

// Option configures the service.
type Option func(*serviceImpl)

// WithNames seeds the queue.
func WithNames(names ...string) Option {
	return func(s *serviceImpl) { s.seed = names }
}

// WithLoop sets whether navigation wraps around.
func WithLoop(loop bool) Option {
	return func(s *serviceImpl) { s.loop = loop }
}

// WithEventBuffer sets the per-channel buffer of new subscriptions.
func WithEventBuffer(size int) Option {
	return func(s *serviceImpl) {
		if size > 0 {
			s.eventBuffer = size
		}
	}
}

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.Mutex

	player  player.Interface
	queue   *playlist.Queue
	resolve playlist.Resolver

	seed        []string
	loop        bool
	eventBuffer int

	subs       []*Subscription
	subsMu     sync.RWMutex
	subsClosed bool

	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// New creates a playback service. resolve maps queued names to locations the
// player can open.
func New(p player.Interface, resolve playlist.Resolver, opts ...Option) Service {
	s := &serviceImpl{
		player:      p,
		resolve:     resolve,
		eventBuffer: defaultEventBuffer,
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.queue = playlist.New(nil,
		playlist.WithLoop(s.loop),
		playlist.WithResolver(s.resolveLocation),
		playlist.WithObserver(playlist.ObserverFuncs{
			OnQueueChanged:   s.onQueueChanged,
			OnCurrentRemoved: s.onCurrentRemoved,
		}),
	)
	if len(s.seed) > 0 {
		s.queue.Append(s.seed...)
	}

	s.wg.Add(1)
	go s.watchFinished()
	return s
}

// resolveLocation reports every miss as an error event before the queue
// skips the entry.
func (s *serviceImpl) resolveLocation(name string) (string, bool) {
	if s.resolve != nil {
		if loc, ok := s.resolve(name); ok {
			return loc, true
		}
	}
	s.broadcast(func(sub *Subscription) {
		sub.sendError(ErrorEvent{Operation: "resolve", Name: name, Err: ErrUnresolvable})
	})
	return "", false
}

func (s *serviceImpl) onQueueChanged(names []string) {
	e := QueueChange{Names: names, Index: s.queue.CurrentIndex()}
	s.broadcast(func(sub *Subscription) {
		sub.sendQueue(QueueChange{Names: slices.Clone(e.Names), Index: e.Index})
	})
}

func (s *serviceImpl) onCurrentRemoved(name string) {
	s.broadcast(func(sub *Subscription) {
		sub.sendRemoved(CurrentRemoval{Name: name})
	})
}

func (s *serviceImpl) broadcast(send func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		send(sub)
	}
}

// watchFinished advances the queue each time the player reaches the end of a track.
func (s *serviceImpl) watchFinished() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case <-s.player.FinishedChan():
			s.handleFinished()
		}
	}
}

func (s *serviceImpl) handleFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if !s.queue.Step(playlist.Next) {
		s.withStateChange(s.player.Stop)
		return
	}
	// Failures are already published as error events.
	_ = s.playLocked()
}

// withStateChange runs fn and emits a StateChange if the player state moved.
func (s *serviceImpl) withStateChange(fn func()) {
	prev := stateFromPlayer(s.player.State())
	fn()
	cur := stateFromPlayer(s.player.State())
	if prev == cur {
		return
	}
	s.broadcast(func(sub *Subscription) {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	})
}

func (s *serviceImpl) playLocked() error {
	loc, ok := s.queue.CurrentLocation()
	if !ok {
		if s.queue.IsEmpty() {
			return ErrEmptyQueue
		}
		return ErrUnresolvable
	}
	name, _ := s.queue.CurrentName()
	index := s.queue.CurrentIndex()

	var playErr error
	s.withStateChange(func() { playErr = s.player.Play(loc) })
	if playErr != nil {
		s.broadcast(func(sub *Subscription) {
			sub.sendError(ErrorEvent{Operation: "play", Name: name, Err: playErr})
		})
		return fmt.Errorf("play %s: %w", name, playErr)
	}

	s.broadcast(func(sub *Subscription) {
		sub.sendTrack(TrackChange{Name: name, Location: loc, Index: index})
	})
	return nil
}

// Play starts the current entry, skipping entries that cannot be resolved.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playLocked()
}

// PlayAt moves the cursor to index and starts playback there.
func (s *serviceImpl) PlayAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.queue.Len() {
		return fmt.Errorf("play at %d: %w", index, ErrQueueEnd)
	}
	s.queue.JumpTo(index)
	return s.playLocked()
}

func (s *serviceImpl) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withStateChange(s.player.Pause)
}

func (s *serviceImpl) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withStateChange(s.player.Toggle)
}

func (s *serviceImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withStateChange(s.player.Stop)
}

// Next moves to the next entry, playing it if playback is active.
func (s *serviceImpl) Next() error {
	return s.step(playlist.Next)
}

// Previous moves to the previous entry, playing it if playback is active.
func (s *serviceImpl) Previous() error {
	return s.step(playlist.Prev)
}

func (s *serviceImpl) step(dir playlist.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.queue.Step(dir) {
		return ErrQueueEnd
	}
	if s.player.State().IsActive() {
		return s.playLocked()
	}
	return nil
}

// JumpTo moves the cursor to index, playing it if playback is active.
// Out-of-range indices are ignored.
func (s *serviceImpl) JumpTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.queue.CurrentIndex()
	removed := s.queue.CurrentRemoved()
	s.queue.JumpTo(index)
	if before == s.queue.CurrentIndex() && removed == s.queue.CurrentRemoved() {
		return nil
	}
	if s.player.State().IsActive() {
		return s.playLocked()
	}
	return nil
}

func (s *serviceImpl) Append(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Append(names...)
}

func (s *serviceImpl) Insert(name string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Insert(name, index)
}

func (s *serviceImpl) RemoveAt(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.RemoveAt(index)
}

func (s *serviceImpl) RemoveNamed(name string, firstOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.RemoveNamed(name, firstOnly)
}

func (s *serviceImpl) Move(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Move(from, to)
}

func (s *serviceImpl) Shuffle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Shuffle()
}

func (s *serviceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Clear()
}

func (s *serviceImpl) Loop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Loop()
}

func (s *serviceImpl) SetLoop(loop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetLoop(loop)
}

func (s *serviceImpl) ToggleLoop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetLoop(!s.queue.Loop())
	return s.queue.Loop()
}

func (s *serviceImpl) State() State {
	return stateFromPlayer(s.player.State())
}

func (s *serviceImpl) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, _ := s.queue.CurrentName()
	return Snapshot{
		Names:   s.queue.Names(),
		Current: current,
		Index:   s.queue.CurrentIndex(),
		Removed: s.queue.CurrentRemoved(),
		Loop:    s.queue.Loop(),
		State:   stateFromPlayer(s.player.State()),
	}
}

func (s *serviceImpl) Position() time.Duration {
	return s.player.Position()
}

func (s *serviceImpl) Duration() time.Duration {
	return s.player.Duration()
}

// TrackInfo returns the metadata of the loaded track, nil when stopped.
func (s *serviceImpl) TrackInfo() *player.TrackInfo {
	return s.player.TrackInfo()
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription(s.eventBuffer)
	if s.subsClosed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Unsubscribe stops delivery to sub and closes its Done channel.
func (s *serviceImpl) Unsubscribe(sub *Subscription) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	i := slices.Index(s.subs, sub)
	if i < 0 {
		return
	}
	s.subs = slices.Delete(s.subs, i, i+1)
	sub.close()
}

// Close stops playback and shuts down the service.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.player.Stop()
	s.mu.Unlock()

	s.wg.Wait()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsClosed = true
	s.subsMu.Unlock()

	return nil
}
