// Package heuristic scores board states for the greedy policy and MCTS
// rollouts, mirroring the reference engine's BoardHeuristic weights.
package heuristic

import "github.com/student/tetris-mcts/pkg/board"

// Weights are a frozen contract shared by the greedy policy and the
// greedy rollout policy; changing them changes both.
const (
	wLines     = 1.0
	wScore     = 0.01
	wHoles     = 4.0
	wHeight    = 0.5
	wBumpiness = 0.3
	wNewHoles  = 2.0
)

// Features summarizes a board's shape for scoring purposes.
type Features struct {
	TotalHeight int
	MaxHeight   int
	Holes       int
	Bumpiness   int
}

// Compute derives Features from b.
func Compute(b *board.Board) Features {
	var f Features
	heights := make([]int, board.Width)
	for x := 0; x < board.Width; x++ {
		h := 0
		seenBlock := false
		holes := 0
		for y := 0; y < board.Height; y++ {
			if b.Grid[y][x] != 0 {
				if !seenBlock {
					h = board.Height - y
					seenBlock = true
				}
			} else if seenBlock {
				holes++
			}
		}
		heights[x] = h
		f.Holes += holes
		f.TotalHeight += h
		if h > f.MaxHeight {
			f.MaxHeight = h
		}
	}
	for x := 0; x < board.Width-1; x++ {
		d := heights[x] - heights[x+1]
		if d < 0 {
			d = -d
		}
		f.Bumpiness += d
	}
	return f
}

// EvaluateTransition scores the step from a board before a placement (via
// its precomputed Features) to the board after, given the placement's
// line-clear/score results. Higher is better.
func EvaluateTransition(before Features, after *board.Board, linesCleared, scoreDelta int) float64 {
	afterFeatures := Compute(after)
	holesDelta := afterFeatures.Holes - before.Holes

	value := wLines*float64(linesCleared) +
		wScore*float64(scoreDelta) -
		wHoles*float64(afterFeatures.Holes) -
		wHeight*float64(afterFeatures.TotalHeight) -
		wBumpiness*float64(afterFeatures.Bumpiness)

	if holesDelta > 0 {
		value -= wNewHoles * float64(holesDelta)
	}

	return value
}
