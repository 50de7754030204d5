package playlist

// slotState tracks whether an entry is still addressable.
//
// An entry that is not in the slice is physically absent; there is no third
// value for it. Only the entry under the cursor may ever be tombstoned.
type slotState uint8

const (
	slotPresent slotState = iota
	slotTombstoned
)

type entry struct {
	name  string
	state slotState
}

func (e entry) tombstoned() bool { return e.state == slotTombstoned }

func newEntries(names []string) []entry {
	entries := make([]entry, len(names))
	for i, name := range names {
		entries[i] = entry{name: name}
	}
	return entries
}
