package playlist

// Direction selects which way Step moves the cursor.
type Direction int

const (
	Next Direction = iota
	Prev
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Next:
		return "Next"
	case Prev:
		return "Prev"
	default:
		return "Unknown"
	}
}

// Resolver maps a track name to a playable location.
// It returns false when the name cannot be resolved.
type Resolver func(name string) (string, bool)

// Observer receives structural notifications from a Queue.
//
// Both methods are called synchronously from inside the mutating call, after
// the queue has reached its new state. Implementations must not call back
// into the queue.
type Observer interface {
	// QueueChanged receives the addressable names, in order, after a mutation.
	QueueChanged(names []string)
	// CurrentRemoved receives the name of the current entry when it is
	// tombstoned or cleared.
	CurrentRemoved(name string)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnQueueChanged   func(names []string)
	OnCurrentRemoved func(name string)
}

func (o ObserverFuncs) QueueChanged(names []string) {
	if o.OnQueueChanged != nil {
		o.OnQueueChanged(names)
	}
}

func (o ObserverFuncs) CurrentRemoved(name string) {
	if o.OnCurrentRemoved != nil {
		o.OnCurrentRemoved(name)
	}
}
