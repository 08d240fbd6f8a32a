package mcts

import (
	"math/rand"

	"github.com/student/tetris-mcts/pkg/heuristic"
	"github.com/student/tetris-mcts/pkg/tetris"
)

// actionStat aggregates search outcomes for one root-level action.
type actionStat struct {
	Action     tetris.Action
	Visits     int64
	TotalValue float64
}

// runSearch executes cfg.Iterations playouts of selection / expansion /
// rollout / backpropagation starting from rootEnv, using its own private
// arena and (if tt is non-nil) reading/writing a private slice of the
// transposition table. It returns the per-root-action visit/value
// aggregates. This is the unit of work handed to each root-parallel
// worker, so it touches no state shared with any other worker.
func runSearch(rootEnv *tetris.Env, cfg *Config, rng *rand.Rand, tt map[stateKey]*ttEntry) []actionStat {
	a := newArena()
	rootIdx := a.newRoot(rootEnv)
	markTerminal(a, rootIdx, rootEnv)

	for i := 0; i < cfg.Iterations; i++ {
		runOneIteration(a, rootIdx, rootEnv, cfg, rng, tt)
	}

	root := a.get(rootIdx)
	stats := make([]actionStat, 0, len(root.children))
	for _, childIdx := range root.children {
		child := a.get(childIdx)
		stats = append(stats, actionStat{
			Action:     child.actionFromParent,
			Visits:     int64(child.visits),
			TotalValue: child.totalValue,
		})
	}
	return stats
}

func markTerminal(a *arena, idx int32, env *tetris.Env) {
	n := a.get(idx)
	n.terminal = env.State == tetris.GameOver || len(n.untried) == 0
}

// stepValue folds one placement's outcome into a backpropagated value per
// cfg.ValueFn: either the raw line-clear score delta, or the greedy policy's
// board-feature-transition heuristic evaluated across the same step.
func stepValue(valueFn ValueFunction, before heuristic.Features, after *tetris.Env, result tetris.StepResult) float64 {
	switch valueFn {
	case ValueGreedyHeuristic:
		return heuristic.EvaluateTransition(before, &after.Board, result.LinesCleared, result.ScoreDelta)
	default:
		return float64(result.ScoreDelta)
	}
}

func runOneIteration(a *arena, rootIdx int32, rootEnv *tetris.Env, cfg *Config, rng *rand.Rand, tt map[stateKey]*ttEntry) {
	env := rootEnv.Clone()
	idx := rootIdx
	path := []int32{rootIdx}
	envs := []*tetris.Env{env}
	depth := 0

	for depth < cfg.MaxDepth {
		n := a.get(idx)
		if n.terminal || len(n.untried) > 0 {
			break
		}
		if len(n.children) == 0 {
			break
		}
		idx = selectChild(a, idx, cfg.ExplorationParam)
		env = env.Clone()
		_, _ = env.Step(a.get(idx).actionFromParent)
		path = append(path, idx)
		envs = append(envs, env)
		depth++
	}

	leaf := a.get(idx)
	value := 0.0

	if !leaf.terminal && len(leaf.untried) > 0 && depth < cfg.MaxDepth {
		i := rng.Intn(len(leaf.untried))
		action := leaf.untried[i]
		last := len(leaf.untried) - 1
		leaf.untried[i] = leaf.untried[last]
		leaf.untried = leaf.untried[:last]

		before := heuristic.Compute(&env.Board)
		childEnv := env.Clone()
		result, _ := childEnv.Step(action)
		childUntried := childEnv.ValidActions()
		childTerminal := childEnv.State == tetris.GameOver || len(childUntried) == 0

		var initVisits int64
		var initValue float64
		if tt != nil {
			if e, ok := tt[keyOf(childEnv)]; ok {
				initVisits = e.Visits
				initValue = e.TotalValue
			}
		}

		childIdx := a.addChild(idx, action, childUntried, childTerminal)
		child := a.get(childIdx)
		child.visits = int32(initVisits)
		child.totalValue = initValue

		path = append(path, childIdx)
		envs = append(envs, childEnv)

		value = stepValue(cfg.ValueFn, before, childEnv, result)
		if !childTerminal {
			rolloutEnv := childEnv.Clone()
			value += rollout(rolloutEnv, cfg.RolloutPolicy, cfg.RolloutDepthLimit, cfg.ValueFn, rng)
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		n := a.get(path[i])
		n.visits++
		n.totalValue += value
		if tt != nil {
			k := keyOf(envs[i])
			e, ok := tt[k]
			if !ok {
				e = &ttEntry{}
				tt[k] = e
			}
			e.Visits++
			e.TotalValue += value
		}
	}
}
