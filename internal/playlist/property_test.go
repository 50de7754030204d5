package playlist

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies cursor bounds and tombstone placement.
func checkInvariants(t *testing.T, q *Queue, step string) {
	t.Helper()
	if len(q.entries) == 0 {
		require.Equal(t, 0, q.cursor, "%s: cursor on empty queue", step)
		return
	}
	require.GreaterOrEqual(t, q.cursor, 0, step)
	require.Less(t, q.cursor, len(q.entries), step)

	for i, e := range q.entries {
		if e.tombstoned() {
			require.Equal(t, q.cursor, i, "%s: tombstone away from cursor", step)
		}
	}
	require.Equal(t, len(q.Names()), q.Len(), step)
	require.Equal(t, q.Len() == 0, q.IsEmpty(), step)
}

// snapshot is the addressable names plus the name of a live current entry
// ("" when it was removed or nothing is selected).
type snapshot struct {
	names   []string
	current string
	cursor  int
	removed bool
}

// insertedAt is the logical index Insert(name, at) gives the new entry in a
// queue of n addressable entries. Indices past the cursor land one slot
// later; a tombstone before that slot is not addressable.
func insertedAt(at, n, cursor int, removed bool) int {
	tomb := 0
	if removed {
		tomb = 1
	}
	switch {
	case at >= n+tomb:
		return n
	case at < 0:
		return 0
	case at <= cursor:
		return at
	default:
		return at + 1 - tomb
	}
}

func TestQueue_RandomOperations(t *testing.T) {
	for seed := range uint64(50) {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed*31+7))
			q := New(nil, WithRand(rand.New(rand.NewPCG(seed, 1))))
			next := 0
			fresh := func() string {
				next++
				return fmt.Sprintf("t%d", next)
			}

			for i := range 300 {
				n := q.Len()
				before := snapshot{names: q.Names(), cursor: q.CurrentIndex(), removed: q.CurrentRemoved()}
				if !q.CurrentRemoved() {
					before.current, _ = q.CurrentName()
				}
				var op string
				keepsCurrent := false

				switch rng.IntN(9) {
				case 0:
					name := fresh()
					op = "append " + name
					q.Append(name)
					keepsCurrent = true
					assert.Equal(t, append(before.names, name), q.Names(), op)
				case 1:
					name := fresh()
					at := rng.IntN(n+3) - 1
					op = fmt.Sprintf("insert %s@%d", name, at)
					q.Insert(name, at)
					keepsCurrent = true
					want := slices.Insert(slices.Clone(before.names), insertedAt(at, n, before.cursor, before.removed), name)
					assert.Equal(t, want, q.Names(), op)
				case 2:
					at := rng.IntN(n+2) - 1
					op = fmt.Sprintf("remove %d", at)
					q.RemoveAt(at)
					want := before.names
					if at >= 0 && at < n {
						want = slices.Delete(slices.Clone(want), at, at+1)
					}
					assert.Equal(t, want, q.Names(), op)
				case 3:
					from, to := rng.IntN(n+2)-1, rng.IntN(n+2)-1
					op = fmt.Sprintf("move %d->%d", from, to)
					q.Move(from, to)
					keepsCurrent = true
					want := before.names
					if from >= 0 && from < n && to >= 0 && to < n {
						want = slices.Clone(want)
						moved := want[from]
						want = slices.Delete(want, from, from+1)
						want = slices.Insert(want, to, moved)
					}
					assert.Equal(t, want, q.Names(), op)
				case 4:
					op = "shuffle"
					q.Shuffle()
					keepsCurrent = true
					assert.ElementsMatch(t, before.names, q.Names(), op)
				case 5:
					op = "next"
					q.Step(Next, rng.IntN(2) == 0)
					assert.Equal(t, before.names, q.Names(), op)
				case 6:
					op = "prev"
					q.Step(Prev, rng.IntN(2) == 0)
					assert.Equal(t, before.names, q.Names(), op)
				case 7:
					at := rng.IntN(n+2) - 1
					op = fmt.Sprintf("jump %d", at)
					q.JumpTo(at)
					assert.Equal(t, before.names, q.Names(), op)
				case 8:
					if rng.IntN(10) == 0 {
						op = "clear"
						q.Clear()
						assert.Empty(t, q.Names(), op)
					} else if n > 0 {
						name := before.names[rng.IntN(n)]
						firstOnly := rng.IntN(2) == 0
						op = "remove named " + name
						q.RemoveNamed(name, firstOnly)
						if !firstOnly {
							assert.NotContains(t, q.Names(), name, op)
						}
					}
				}

				step := fmt.Sprintf("step %d (%s)", i, op)
				checkInvariants(t, q, step)

				if keepsCurrent && before.current != "" {
					name, _ := q.CurrentName()
					assert.Equal(t, before.current, name, step)
					assert.False(t, q.CurrentRemoved(), step)
				}
			}
		})
	}
}

func TestQueue_JumpToCurrentNeverChangesState(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		names := make([]string, rng.IntN(6)+1)
		for i := range names {
			names[i] = fmt.Sprintf("t%d", rng.IntN(4))
		}
		rec := &recorder{}
		q := New(names, WithObserver(rec))
		q.JumpTo(rng.IntN(len(names)))
		rec.reset()
		before := slices.Clone(q.entries)
		cursor := q.CurrentIndex()

		q.JumpTo(cursor)

		require.Equal(t, before, q.entries)
		require.Equal(t, cursor, q.CurrentIndex())
		require.Empty(t, rec.events)
	}
}

func TestShuffle_Uniform(t *testing.T) {
	const rounds = 6000
	q := New([]string{"a", "b", "c"}, WithRand(rand.New(rand.NewPCG(11, 13))))
	counts := make(map[string]int)

	for range rounds {
		q.Shuffle()
		counts[fmt.Sprint(q.Names())]++
	}

	require.Len(t, counts, 6, "every permutation should appear")
	for perm, c := range counts {
		assert.InDelta(t, rounds/6, c, rounds/6*0.15, perm)
	}
}
