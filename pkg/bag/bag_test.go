package bag

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRefillProducesAllSevenPiecesPerBatch(t *testing.T) {
	b := New(1)
	var out []int
	out = b.Refill(out)
	require.Len(t, out, 7)
	seen := make(map[int]bool)
	for _, id := range out {
		seen[id] = true
	}
	require.Len(t, seen, 7)
}

func TestCloneReproducesFutureStream(t *testing.T) {
	b := New(42)
	var warm []int
	warm = b.Refill(warm)
	for _, id := range warm[:3] {
		b.RegisterUse(id)
	}

	clone := b.Clone()

	var a, c []int
	a = b.Refill(a)
	c = clone.Refill(c)
	require.Equal(t, a, c)
}

// TestApplyAntiRepeatFixesMidBatchPosition proves the anti-repeat pass
// isn't limited to position 0: a recent-window id placed at index 3 of a
// handcrafted permutation must be swapped forward for a later, non-avoided
// candidate.
func TestApplyAntiRepeatFixesMidBatchPosition(t *testing.T) {
	perm := []int{0, 1, 6, 2, 5, 3, 4}
	got := applyAntiRepeat(perm, []int{2, 3, 4}, -1)
	require.NotEqual(t, 2, got[3], "position 3 should have been swapped away from a recent id")
	require.Equal(t, 5, got[3])
}

// TestApplyAntiRepeatUpdatesLastInsertAsItGoes checks that a value just
// placed becomes ineligible for the very next slot, even mid-batch.
func TestApplyAntiRepeatUpdatesLastInsertAsItGoes(t *testing.T) {
	perm := []int{5, 5, 1}
	got := applyAntiRepeat(perm, nil, -1)
	require.NotEqual(t, got[0], got[1])
}

// TestAntiRepeatOverManyEmissions exercises spec.md's bag invariant: across
// a long run of emissions, drawn one at a time from a queue refilled only
// when empty, a piece is never immediately repeated.
func TestAntiRepeatOverManyEmissions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		b := New(seed)

		var queue []int
		history := make([]int, 0, 1000)
		for len(history) < 1000 {
			for len(queue) < 1 {
				queue = b.Refill(queue)
			}
			id := queue[0]
			queue = queue[1:]
			b.RegisterUse(id)
			history = append(history, id)
		}

		for i := 1; i < len(history); i++ {
			require.NotEqual(t, history[i-1], history[i], "immediate repeat at index %d", i)
		}
	})
}
