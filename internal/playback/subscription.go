package playback

const defaultEventBuffer = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	QueueChanged   <-chan QueueChange
	CurrentRemoved <-chan CurrentRemoval
	TrackChanged   <-chan TrackChange
	StateChanged   <-chan StateChange
	Error          <-chan ErrorEvent
	Done           <-chan struct{}

	// Internal write channels
	queueCh   chan QueueChange
	removedCh chan CurrentRemoval
	trackCh   chan TrackChange
	stateCh   chan StateChange
	errorCh   chan ErrorEvent
	doneCh    chan struct{}
}

// newSubscription creates a subscription whose channels hold size events each.
func newSubscription(size int) *Subscription {
	s := &Subscription{
		queueCh:   make(chan QueueChange, size),
		removedCh: make(chan CurrentRemoval, size),
		trackCh:   make(chan TrackChange, size),
		stateCh:   make(chan StateChange, size),
		errorCh:   make(chan ErrorEvent, size),
		doneCh:    make(chan struct{}),
	}
	s.QueueChanged = s.queueCh
	s.CurrentRemoved = s.removedCh
	s.TrackChanged = s.trackCh
	s.StateChanged = s.stateCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// Sends never block: events are dropped when a subscriber falls behind.

func (s *Subscription) sendQueue(e QueueChange) {
	select {
	case s.queueCh <- e:
	default:
	}
}

func (s *Subscription) sendRemoved(e CurrentRemoval) {
	select {
	case s.removedCh <- e:
	default:
	}
}

func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
	}
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
