package mcts

import "github.com/student/tetris-mcts/pkg/tetris"

// noParent marks the root node's parent slot.
const noParent = -1

// node is one arena element. Parent/child links are indices into the
// owning arena's slice, not pointers, so an arena (and therefore a whole
// search tree) can be discarded simply by dropping the slice.
type node struct {
	parent           int32
	actionFromParent tetris.Action
	visits           int32
	totalValue       float64
	terminal         bool
	untried          []tetris.Action
	children         []int32
}

// arena owns one search tree's nodes, indexed by int32 position.
type arena struct {
	nodes []node
}

func newArena() *arena {
	return &arena{nodes: make([]node, 0, 1024)}
}

// newRoot resets the arena to hold a single, unexpanded root node for env.
func (a *arena) newRoot(env *tetris.Env) int32 {
	a.nodes = a.nodes[:0]
	a.nodes = append(a.nodes, node{
		parent:  noParent,
		untried: env.ValidActions(),
	})
	return 0
}

func (a *arena) get(i int32) *node {
	return &a.nodes[i]
}

// addChild appends a new node as a child of parent, returning its index.
func (a *arena) addChild(parent int32, action tetris.Action, untried []tetris.Action, terminal bool) int32 {
	idx := int32(len(a.nodes))
	a.nodes = append(a.nodes, node{
		parent:           parent,
		actionFromParent: action,
		untried:          untried,
		terminal:         terminal,
	})
	a.nodes[parent].children = append(a.nodes[parent].children, idx)
	return idx
}

func (n *node) q() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.totalValue / float64(n.visits)
}
