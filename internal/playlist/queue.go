// Package playlist implements the play queue: an ordered list of track names
// with a single cursor that stays valid across every edit.
//
// Removing the entry under the cursor does not delete it. The entry is
// tombstoned instead, so a track that is still playing keeps its slot until
// the cursor moves away, at which point the slot is dropped. Indices passed
// to RemoveAt, Move and JumpTo are logical: the tombstone is never
// addressable. Insert positions relative to the cursor instead.
//
// A Queue is not safe for concurrent use; callers serialize access.
package playlist

import (
	"math/rand/v2"
)

// Queue is a play queue with a cursor and a loop flag.
type Queue struct {
	entries  []entry
	cursor   int
	loop     bool
	observer Observer
	resolve  Resolver
	intn     func(n int) int
}

// Option configures a Queue.
type Option func(*Queue)

// WithObserver registers the observer notified of structural changes.
func WithObserver(o Observer) Option {
	return func(q *Queue) { q.observer = o }
}

// WithResolver sets the resolver used by CurrentLocation.
func WithResolver(r Resolver) Option {
	return func(q *Queue) { q.resolve = r }
}

// WithLoop sets the initial loop flag.
func WithLoop(loop bool) Option {
	return func(q *Queue) { q.loop = loop }
}

// WithRand sets the random source used by Shuffle.
func WithRand(r *rand.Rand) Option {
	return func(q *Queue) { q.intn = r.IntN }
}

// New creates a queue seeded with names. The cursor starts on the first entry.
// A change notification is sent once when names is not empty.
func New(names []string, opts ...Option) *Queue {
	q := &Queue{
		entries: newEntries(names),
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(q)
	}
	if len(names) > 0 {
		q.notifyChanged()
	}
	return q
}

// SetObserver replaces the observer. Passing nil detaches it.
func (q *Queue) SetObserver(o Observer) {
	q.observer = o
}

// SetResolver replaces the resolver used by CurrentLocation.
func (q *Queue) SetResolver(r Resolver) {
	q.resolve = r
}

// Loop reports whether navigation wraps around by default.
func (q *Queue) Loop() bool {
	return q.loop
}

// SetLoop sets the default wraparound behavior.
func (q *Queue) SetLoop(loop bool) {
	q.loop = loop
}

// currentTombstoned reports whether the entry under the cursor is pending removal.
func (q *Queue) currentTombstoned() bool {
	return q.cursor < len(q.entries) && q.entries[q.cursor].tombstoned()
}

// effectiveLen is the number of addressable entries.
func (q *Queue) effectiveLen() int {
	if q.currentTombstoned() {
		return len(q.entries) - 1
	}
	return len(q.entries)
}

// physical translates a logical index into a slice index. Logical indices at
// or after a tombstoned cursor are shifted past it.
func (q *Queue) physical(index int) int {
	if q.currentTombstoned() && index >= q.cursor {
		return index + 1
	}
	return index
}

// validIndex reports whether index addresses an entry.
func (q *Queue) validIndex(index int) bool {
	return index >= 0 && index < q.effectiveLen()
}

// dropTombstone physically removes a tombstoned current entry. The cursor is
// left in place, which now designates the entry that followed it.
func (q *Queue) dropTombstone() {
	if !q.currentTombstoned() {
		return
	}
	q.entries = append(q.entries[:q.cursor], q.entries[q.cursor+1:]...)
	q.clampCursor()
}

func (q *Queue) clampCursor() {
	if q.cursor >= len(q.entries) {
		q.cursor = len(q.entries) - 1
	}
	if q.cursor < 0 {
		q.cursor = 0
	}
}

// CurrentName returns the name under the cursor, including a tombstoned one.
// Returns false if the queue has no entries.
func (q *Queue) CurrentName() (string, bool) {
	if len(q.entries) == 0 {
		return "", false
	}
	return q.entries[q.cursor].name, true
}

// CurrentRemoved reports whether the current entry was removed and is only
// retained until the cursor moves.
func (q *Queue) CurrentRemoved() bool {
	return q.currentTombstoned()
}

// CurrentIndex returns the cursor. When the current entry is tombstoned it is
// also the logical index of the entry that follows it.
func (q *Queue) CurrentIndex() int {
	return q.cursor
}

// CurrentLocation resolves the current entry to a playable location.
//
// Tombstoned and unresolvable entries are skipped by advancing the cursor,
// honoring the loop flag. Returns false once every entry has been tried or the
// cursor cannot move any further.
func (q *Queue) CurrentLocation() (string, bool) {
	if len(q.entries) == 0 || q.resolve == nil {
		return "", false
	}
	for range len(q.entries) {
		e := q.entries[q.cursor]
		if !e.tombstoned() {
			if loc, ok := q.resolve(e.name); ok {
				return loc, true
			}
		}
		if !q.Step(Next) {
			return "", false
		}
	}
	return "", false
}

// IsEmpty reports whether no entry is addressable.
func (q *Queue) IsEmpty() bool {
	return len(q.entries) == 0 || (len(q.entries) == 1 && q.entries[0].tombstoned())
}

// IsFirst reports whether the cursor is on the first slot or the queue is empty.
func (q *Queue) IsFirst() bool {
	return len(q.entries) == 0 || q.cursor == 0
}

// IsLast reports whether the cursor is on the last slot or the queue is empty.
func (q *Queue) IsLast() bool {
	return len(q.entries) == 0 || q.cursor+1 >= len(q.entries)
}

// Len returns the number of addressable entries.
func (q *Queue) Len() int {
	return q.effectiveLen()
}

// Names returns the addressable names in order.
func (q *Queue) Names() []string {
	names := make([]string, 0, len(q.entries))
	for i, e := range q.entries {
		if i == q.cursor && e.tombstoned() {
			continue
		}
		names = append(names, e.name)
	}
	return names
}

// Step moves the cursor one slot in dir and reports whether it moved.
//
// The optional loop argument overrides the loop flag for this call only.
// Leaving a tombstoned entry drops it.
func (q *Queue) Step(dir Direction, loop ...bool) bool {
	wrap := q.loop
	if len(loop) > 0 {
		wrap = loop[0]
	}

	start := q.cursor
	next := start
	switch dir {
	case Prev:
		switch {
		case start > 0:
			next = start - 1
		case wrap && len(q.entries) > 0:
			next = len(q.entries) - 1
		}
	case Next:
		switch {
		case start+1 < len(q.entries):
			next = start + 1
		case wrap:
			next = 0
		}
	}

	if next == start {
		return false
	}
	if q.entries[start].tombstoned() {
		q.entries = append(q.entries[:start], q.entries[start+1:]...)
		if start < next {
			next--
		}
	}
	q.cursor = next
	return true
}

// JumpTo moves the cursor to a logical index. Out-of-range indices are ignored.
func (q *Queue) JumpTo(index int) {
	if !q.validIndex(index) {
		return
	}
	q.dropTombstone()
	q.cursor = index
}

func (q *Queue) notifyChanged() {
	if q.observer == nil {
		return
	}
	q.observer.QueueChanged(q.Names())
}

func (q *Queue) notifyCurrentRemoved(name string) {
	if q.observer == nil {
		return
	}
	q.observer.CurrentRemoved(name)
}
