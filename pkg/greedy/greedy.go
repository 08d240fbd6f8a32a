// Package greedy implements a stateless one-ply lookahead placement
// policy, used both as a standalone baseline collaborator and as an MCTS
// rollout policy.
package greedy

import (
	"github.com/student/tetris-mcts/pkg/heuristic"
	"github.com/student/tetris-mcts/pkg/tetris"
)

// Choose evaluates every legal action by cloning env, stepping it, and
// scoring the resulting board with heuristic.EvaluateTransition, returning
// the best-scoring action. Ties keep the first-encountered action. Returns
// false if env has no legal actions.
func Choose(env *tetris.Env) (tetris.Action, bool) {
	actions := env.ValidActions()
	if len(actions) == 0 {
		return tetris.Action{}, false
	}

	before := heuristic.Compute(&env.Board)

	best := actions[0]
	bestScore := float64(0)
	haveBest := false

	for _, a := range actions {
		clone := env.Clone()
		result, err := clone.Step(a)
		if err != nil {
			continue
		}
		score := heuristic.EvaluateTransition(before, &clone.Board, result.LinesCleared, result.ScoreDelta)
		if !haveBest || score > bestScore {
			bestScore = score
			best = a
			haveBest = true
		}
	}

	if !haveBest {
		return actions[0], true
	}
	return best, true
}
