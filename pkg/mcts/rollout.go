package mcts

import (
	"math/rand"

	"github.com/student/tetris-mcts/pkg/greedy"
	"github.com/student/tetris-mcts/pkg/heuristic"
	"github.com/student/tetris-mcts/pkg/tetris"
)

// rollout plays env forward from its current state to either a terminal
// state or depthLimit steps, using the configured policy, and returns the
// accumulated per-step value, folded in according to valueFn.
func rollout(env *tetris.Env, policy RolloutPolicy, depthLimit int, valueFn ValueFunction, rng *rand.Rand) float64 {
	total := 0.0
	for step := 0; step < depthLimit; step++ {
		var action tetris.Action
		switch policy {
		case RolloutGreedy:
			a, ok := greedy.Choose(env)
			if !ok {
				return total
			}
			action = a
		default:
			actions := env.ValidActions()
			if len(actions) == 0 {
				return total
			}
			action = actions[rng.Intn(len(actions))]
		}

		before := heuristic.Compute(&env.Board)
		result, err := env.Step(action)
		if err != nil {
			return total
		}
		total += stepValue(valueFn, before, env, result)
		if result.Done {
			break
		}
	}
	return total
}
