package playlist

import "slices"

// Append adds names to the end of the queue. The cursor does not move.
func (q *Queue) Append(names ...string) {
	for _, name := range names {
		q.entries = append(q.entries, entry{name: name})
	}
	q.notifyChanged()
}

// Insert adds name near index. An index at or before the cursor inserts at
// index and shifts the cursor with its entry, so a name inserted at the
// cursor lands before a tombstone. An index past the cursor inserts one slot
// later, at index+1. Negative indices insert at the front; indices at or past
// the end append.
func (q *Queue) Insert(name string, index int) {
	if index <= q.cursor {
		q.cursor++
	}
	e := entry{name: name}
	switch {
	case index >= len(q.entries):
		q.entries = append(q.entries, e)
	case index < 0:
		q.entries = slices.Insert(q.entries, 0, e)
	case q.cursor < index:
		q.entries = slices.Insert(q.entries, index+1, e)
	default:
		q.entries = slices.Insert(q.entries, index, e)
	}
	// An insert into an empty queue bumped the cursor past the only entry.
	q.clampCursor()
	q.notifyChanged()
}

// Clear removes every entry, including the current one.
func (q *Queue) Clear() {
	if q.IsEmpty() {
		return
	}
	current := q.entries[q.cursor].name
	q.cursor = 0
	q.entries = q.entries[:0]
	q.notifyCurrentRemoved(current)
	q.notifyChanged()
}

// RemoveAt removes the entry at a logical index. Out-of-range indices are
// ignored. Removing the current entry tombstones it.
func (q *Queue) RemoveAt(index int) {
	if !q.removeAt(index) {
		return
	}
	q.notifyChanged()
}

func (q *Queue) removeAt(index int) bool {
	if !q.validIndex(index) {
		return false
	}
	if index == q.cursor && !q.currentTombstoned() {
		q.entries[index].state = slotTombstoned
		q.notifyCurrentRemoved(q.entries[index].name)
		return true
	}

	pos := q.physical(index)
	q.entries = append(q.entries[:pos], q.entries[pos+1:]...)
	if pos < q.cursor {
		q.cursor--
	}
	return true
}

// RemoveNamed removes entries called name, or only the first one when
// firstOnly is set. One change notification is sent for the whole call.
func (q *Queue) RemoveNamed(name string, firstOnly bool) {
	snapshot := make([]entry, len(q.entries))
	copy(snapshot, q.entries)

	skipped := 0
	for i, e := range snapshot {
		switch {
		case e.tombstoned():
			skipped++
		case e.name == name:
			q.removeAt(i - skipped)
			skipped++
			if firstOnly {
				q.notifyChanged()
				return
			}
		}
	}
	q.notifyChanged()
}

// Move relocates the entry at logical index from to logical index to.
// The cursor keeps designating the same entry. Out-of-range indices are ignored;
// every accepted move notifies, including a move onto itself.
func (q *Queue) Move(from, to int) {
	if !q.validIndex(from) || !q.validIndex(to) {
		return
	}
	src := q.physical(from)
	dst := q.physical(to)

	moved := q.entries[src]
	q.entries = append(q.entries[:src], q.entries[src+1:]...)
	q.entries = append(q.entries, entry{})
	copy(q.entries[dst+1:], q.entries[dst:])
	q.entries[dst] = moved

	switch {
	case q.cursor == src:
		q.cursor = dst
	case q.cursor > src && dst >= q.cursor:
		q.cursor--
	case q.cursor < src && dst <= q.cursor:
		q.cursor++
	}
	q.notifyChanged()
}

// Shuffle reorders every entry uniformly at random by drawing from the
// remaining pool. The cursor follows the current entry.
//
// Drawing from the pool is quadratic, which is fine for queue-sized inputs.
func (q *Queue) Shuffle() {
	if len(q.entries) == 0 {
		return
	}
	pool := make([]entry, len(q.entries))
	copy(pool, q.entries)
	current := q.cursor

	shuffled := make([]entry, 0, len(pool))
	for len(pool) > 0 {
		i := q.intn(len(pool))
		if i == current {
			q.cursor = len(shuffled)
			current = -1
		} else if i < current {
			current--
		}
		shuffled = append(shuffled, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	q.entries = shuffled
	q.notifyChanged()
}
