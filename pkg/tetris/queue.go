package tetris

import "github.com/student/tetris-mcts/pkg/bag"

// QueueSize is the number of upcoming pieces kept visible/previewable.
const QueueSize = 4

// queue is a simple FIFO of pending piece ids, refilled from a Bag
// whenever it runs low.
type queue struct {
	pieces []int
}

func newQueue(b *bag.Bag) *queue {
	q := &queue{pieces: make([]int, 0, QueueSize*2)}
	q.ensure(b, QueueSize)
	return q
}

func (q *queue) ensure(b *bag.Bag, n int) {
	for len(q.pieces) < n {
		q.pieces = b.Refill(q.pieces)
	}
}

func (q *queue) pop(b *bag.Bag) int {
	q.ensure(b, QueueSize+1)
	id := q.pieces[0]
	q.pieces = q.pieces[1:]
	b.RegisterUse(id)
	q.ensure(b, QueueSize)
	return id
}

func (q *queue) preview(n int) []int {
	return bag.PeekN(q.pieces, n)
}

func (q *queue) clone() *queue {
	return &queue{pieces: append([]int(nil), q.pieces...)}
}
