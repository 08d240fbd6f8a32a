// Package bag implements the randomized 7-piece queue with anti-repeat
// constraints, mirroring the reference engine's Bag/refill algorithm.
package bag

import (
	"math/rand"

	"github.com/student/tetris-mcts/pkg/piece"
)

const recentLimit = 3

// Bag produces a randomized stream of piece IDs, avoiding immediate and
// near-term repeats of the same piece.
type Bag struct {
	rng        *rand.Rand
	lastQueued int
	lastInsert int
	recent     []int
}

// New creates a Bag seeded deterministically from seed.
func New(seed int64) *Bag {
	return &Bag{
		rng:        rand.New(rand.NewSource(seed)),
		lastQueued: -1,
		lastInsert: -1,
		recent:     make([]int, 0, recentLimit),
	}
}

// Clone returns a deep, independent copy of the bag, including its PRNG
// stream position (math/rand.Rand is a plain struct, so a value copy
// reproduces the exact future stream).
func (b *Bag) Clone() *Bag {
	cp := &Bag{
		rng:        new(rand.Rand),
		lastQueued: b.lastQueued,
		lastInsert: b.lastInsert,
		recent:     append([]int(nil), b.recent...),
	}
	*cp.rng = *b.rng
	return cp
}

// applyAntiRepeat walks perm left to right and, at every position i whose
// candidate should be avoided, swaps forward the first later candidate
// that doesn't need avoiding. lastInsert is updated as each position is
// finalized, so a swap made at position i can change what counts as
// avoidable at position i+1. This is the pure core of Refill's anti-repeat
// pass, split out so it can be exercised directly without depending on the
// shuffle's randomness.
func applyAntiRepeat(perm []int, recent []int, lastInsert int) []int {
	avoid := func(candidate int) bool {
		if candidate == lastInsert {
			return true
		}
		for _, r := range recent {
			if r == candidate {
				return true
			}
		}
		return false
	}

	for i := range perm {
		if avoid(perm[i]) {
			for j := i + 1; j < len(perm); j++ {
				if !avoid(perm[j]) {
					perm[i], perm[j] = perm[j], perm[i]
					break
				}
			}
		}
		lastInsert = perm[i]
	}
	return perm
}

// Refill produces one freshly shuffled permutation of all seven pieces,
// nudging each slot forward away from the last-inserted id (which updates
// as each slot is finalized) and the recent-use window, when a later
// candidate avoids it, and appends them to out.
func (b *Bag) Refill(out []int) []int {
	perm := [int(piece.NumPieces)]int{}
	for i := range perm {
		perm[i] = i
	}
	b.rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	slice := applyAntiRepeat(perm[:], b.recent, b.lastInsert)
	for _, id := range slice {
		out = append(out, id)
		b.lastInsert = id
	}
	return out
}

// PeekN returns a non-destructive copy of the first n pieces of queue, or
// of the whole queue when it holds fewer than n. queue is the caller-owned
// live queue slice; PeekN neither mutates nor refills it.
func PeekN(queue []int, n int) []int {
	if n > len(queue) {
		n = len(queue)
	}
	out := make([]int, n)
	copy(out, queue[:n])
	return out
}

// RegisterUse records that id has just been emitted/consumed from the
// queue, updating the anti-repeat history.
func (b *Bag) RegisterUse(id int) {
	b.lastQueued = id
	b.recent = append(b.recent, id)
	if len(b.recent) > recentLimit {
		b.recent = b.recent[1:]
	}
}

// ResetHistory clears the anti-repeat memory, e.g. at the start of a new
// episode.
func (b *Bag) ResetHistory() {
	b.lastQueued = -1
	b.lastInsert = -1
	b.recent = b.recent[:0]
}

// LastQueued returns the most recently registered-used piece id, or -1.
func (b *Bag) LastQueued() int {
	return b.lastQueued
}
