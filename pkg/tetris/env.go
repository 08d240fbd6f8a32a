// Package tetris implements the placement-granular Tetris environment:
// a deterministic board + bag + active piece, stepped one hard-drop
// placement at a time.
package tetris

import (
	"github.com/pkg/errors"

	"github.com/student/tetris-mcts/pkg/bag"
	"github.com/student/tetris-mcts/pkg/board"
	"github.com/student/tetris-mcts/pkg/piece"
)

// ErrNoActivePiece is an internal-consistency error: Step was called while
// no active piece is in play and the board is not done.
var ErrNoActivePiece = errors.New("tetris: step called with no active piece")

// State distinguishes a live episode from a finished one.
type State int

const (
	Playing State = iota
	GameOver
)

// Score tracks the reference engine's line-clear point table.
type Score int

var lineClearPoints = map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

// Action is a single placement decision: rotate the active piece, slide it
// to targetX, and hard-drop — optionally swapping with the held piece
// first.
type Action struct {
	Rotation int
	TargetX  int
	UseHold  bool
}

// StepResult reports the outcome of applying one Action.
type StepResult struct {
	LinesCleared int
	Reward       int
	ScoreDelta   int
	Done         bool
}

// ActivePiece is the piece currently in play.
type ActivePiece struct {
	ID       piece.ID
	Rotation int
	Origin   piece.Cell
}

// Env is the full environment state: board, bag, upcoming queue, active
// piece, and hold slot.
type Env struct {
	Board   board.Board
	bag     *bag.Bag
	q       *queue
	Active  ActivePiece
	HasActv bool
	Hold    int // -1 if empty
	HoldUse bool
	Score   Score
	Lines   int
	Turns   int
	Holds   int
	State   State
}

// spawnOrigin is the origin a freshly spawned piece starts at, matching
// the reference engine's spawn position.
var spawnOrigin = piece.Cell{X: 3, Y: 0}

// NewEnv creates a fresh environment seeded deterministically.
func NewEnv(seed int64) *Env {
	e := &Env{}
	e.Reset(seed)
	return e
}

// Reset reinitializes the environment with a freshly seeded bag, clearing
// the board, score, hold, and turn counters.
func (e *Env) Reset(seed int64) {
	e.Board = board.Board{}
	e.bag = bag.New(seed)
	e.q = newQueue(e.bag)
	e.Hold = -1
	e.HoldUse = false
	e.Score = 0
	e.Lines = 0
	e.Turns = 0
	e.Holds = 0
	e.State = Playing
	e.spawn()
}

func (e *Env) spawn() {
	id := e.q.pop(e.bag)
	e.Active = ActivePiece{ID: piece.ID(id), Rotation: 0, Origin: spawnOrigin}
	e.HasActv = true
	e.HoldUse = false
	if !e.Board.CanPlace(e.Active.ID, e.Active.Rotation, e.Active.Origin) {
		e.State = GameOver
	}
}

// Clone returns a deep, independent copy of the environment. Since Env
// holds no pointers besides the bag/queue (both of which are cloned), this
// is a cheap value copy proportional to board + queue size.
func (e *Env) Clone() *Env {
	cp := *e
	cp.bag = e.bag.Clone()
	cp.q = e.q.clone()
	return &cp
}

// QueuePreview returns a copy of the next up-to-n upcoming piece ids.
func (e *Env) QueuePreview(n int) []int {
	return e.q.preview(n)
}

// applyHold swaps the active piece with the held piece (or stashes the
// active piece as the hold if none is held yet), respecting the
// once-per-active-piece hold restriction.
func (e *Env) applyHold() bool {
	if e.HoldUse {
		return false
	}
	cur := int(e.Active.ID)
	if e.Hold < 0 {
		e.Hold = cur
		e.spawn()
	} else {
		next := e.Hold
		e.Hold = cur
		e.Active = ActivePiece{ID: piece.ID(next), Rotation: 0, Origin: spawnOrigin}
		e.HasActv = true
		if !e.Board.CanPlace(e.Active.ID, e.Active.Rotation, e.Active.Origin) {
			e.State = GameOver
		}
	}
	e.HoldUse = true
	e.Holds++
	return true
}

// simulatePlacement walks the active piece from its current rotation and
// column to rotation/targetX one step at a time, checking for obstruction
// at every intermediate rotation and column, then drops it as far as it
// will go. It returns the resulting origin and whether the placement is
// legal. This mirrors the reference engine's simulatePlacement, which
// never teleports: a rotation or slide that would pass through an
// occupied cell partway is rejected even if the final pose is clear.
func (e *Env) simulatePlacement(rotation, targetX int) (piece.Cell, bool) {
	rot := e.Active.Rotation
	origin := e.Active.Origin

	for rot != rotation {
		rot = (rot + 1) % piece.NumRotations
		if !e.Board.CanPlace(e.Active.ID, rot, origin) {
			return piece.Cell{}, false
		}
	}

	step := 1
	if targetX < origin.X {
		step = -1
	}
	for origin.X != targetX {
		next := piece.Cell{X: origin.X + step, Y: origin.Y}
		if !e.Board.CanPlace(e.Active.ID, rot, next) {
			return piece.Cell{}, false
		}
		origin = next
	}

	for {
		next := piece.Cell{X: origin.X, Y: origin.Y + 1}
		if !e.Board.CanPlace(e.Active.ID, rot, next) {
			break
		}
		origin = next
	}
	return origin, true
}

// Step applies a single placement action: optional hold, then rotate +
// slide + hard-drop, lock, clear lines, and spawn the next piece.
func (e *Env) Step(a Action) (StepResult, error) {
	if e.State == GameOver {
		return StepResult{Done: true}, nil
	}
	if !e.HasActv {
		return StepResult{}, errors.WithStack(ErrNoActivePiece)
	}

	if a.UseHold {
		e.applyHold()
		if e.State == GameOver {
			e.Turns++
			return StepResult{Done: true}, nil
		}
	}

	origin, ok := e.simulatePlacement(a.Rotation, a.TargetX)
	if !ok {
		e.Turns++
		e.State = GameOver
		return StepResult{Done: true}, nil
	}

	e.Board.Lock(e.Active.ID, a.Rotation, origin)
	cleared := e.Board.ClearFullLines()
	scoreDelta := lineClearPoints[cleared]
	e.Score += Score(scoreDelta)
	e.Lines += cleared
	e.Turns++
	e.HasActv = false

	e.spawn()

	return StepResult{
		LinesCleared: cleared,
		Reward:       cleared,
		ScoreDelta:   scoreDelta,
		Done:         e.State == GameOver,
	}, nil
}

// ValidActions enumerates every legal Action from the current state: every
// rotation of the active piece (and, if hold is available, of the piece
// that would result from holding), crossed with every targetX the piece's
// bounding box allows.
func (e *Env) ValidActions() []Action {
	var actions []Action
	if !e.HasActv || e.State == GameOver {
		return actions
	}

	appendForPiece := func(id piece.ID, useHold bool) {
		for rot := 0; rot < piece.NumRotations; rot++ {
			minOff, maxOff := 0, 0
			cells, err := piece.Cells(id, rot, piece.Cell{})
			if err != nil {
				continue
			}
			minOff, maxOff = cells[0].X, cells[0].X
			for _, c := range cells {
				if c.X < minOff {
					minOff = c.X
				}
				if c.X > maxOff {
					maxOff = c.X
				}
			}
			lo := -minOff
			hi := board.Width - 1 - maxOff
			for x := lo; x <= hi; x++ {
				// Rotation is always 0 on a piece just spawned or swapped in
				// from hold, so probing from rotation 0/spawnOrigin exercises
				// the same step-by-step rotate-then-slide walk Step() would.
				probe := Env{Board: e.Board, Active: ActivePiece{ID: id, Rotation: 0, Origin: spawnOrigin}}
				if _, ok := probe.simulatePlacement(rot, x); ok {
					actions = append(actions, Action{Rotation: rot, TargetX: x, UseHold: useHold})
				}
			}
		}
	}

	appendForPiece(e.Active.ID, false)
	if !e.HoldUse {
		holdID := e.Hold
		if holdID < 0 {
			holdID = int(e.q.pieces[0])
		}
		appendForPiece(piece.ID(holdID), true)
	}

	return actions
}
