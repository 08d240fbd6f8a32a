package mcts

import (
	"github.com/student/tetris-mcts/pkg/board"
	"github.com/student/tetris-mcts/pkg/tetris"
)

// previewLen is the fixed number of upcoming queue pieces folded into the
// transposition key, matching tetris.QueueSize.
const previewLen = tetris.QueueSize

// stateKey canonicalizes the fields of an Env that affect its future
// legal play, so that it can be used directly as a Go map key. Field
// order and content mirror the reference engine's StateKey/StateKeyHash.
type stateKey struct {
	grid       [board.Height][board.Width]int8
	activeID   int
	rotation   int
	hold       int
	holdUsed   bool
	hasActive  bool
	preview    [previewLen]int
}

func keyOf(e *tetris.Env) stateKey {
	k := stateKey{
		grid:      e.Board.Grid,
		activeID:  int(e.Active.ID),
		rotation:  e.Active.Rotation,
		hold:      e.Hold,
		holdUsed:  e.HoldUse,
		hasActive: e.HasActv,
	}
	preview := e.QueuePreview(previewLen)
	for i := range k.preview {
		if i < len(preview) {
			k.preview[i] = preview[i]
		} else {
			k.preview[i] = -1
		}
	}
	return k
}

// ttEntry is one transposition-table slot: aggregate visits and value.
type ttEntry struct {
	Visits     int64
	TotalValue float64
}
