// Package mcts implements the root-parallel Monte Carlo tree search engine
// used to choose Tetris placement actions.
package mcts

import "math"

// RolloutPolicy selects how a leaf's simulation-to-terminal is played out.
type RolloutPolicy int

const (
	RolloutRandom RolloutPolicy = iota
	RolloutGreedy
)

// ValueFunction selects how a single rollout step's reward is folded into
// the value backpropagated through the tree.
type ValueFunction int

const (
	// ValueScoreDelta folds in a step's raw line-clear score delta.
	ValueScoreDelta ValueFunction = iota
	// ValueGreedyHeuristic scores a step by the heuristic package's board
	// feature transition (pkg/heuristic.EvaluateTransition), the same
	// evaluation the greedy policy uses for its one-ply lookahead.
	ValueGreedyHeuristic
)

// Config is the chained-setter configuration for one agent, in the style
// of the teacher's Limits struct.
type Config struct {
	Iterations            int
	NThreads              int
	ExplorationParam      float64
	MaxDepth              int
	RolloutPolicy         RolloutPolicy
	ValueFn               ValueFunction
	UseTranspositionTable bool
	RolloutDepthLimit     int
	ScoreLimit            *int
	TimeLimitSeconds      *float64
}

// DefaultExplorationParam is sqrt(2), the standard UCT constant.
const DefaultExplorationParam = math.Sqrt2

// DefaultMaxDepth bounds the selection phase's descent through the tree,
// independent of RolloutDepthLimit which bounds the simulation phase.
const DefaultMaxDepth = 64

// DefaultConfig returns a Config with sane defaults: 1 worker, 1000
// iterations, random rollout, no transposition table.
func DefaultConfig() *Config {
	return &Config{
		Iterations:        1000,
		NThreads:          1,
		ExplorationParam:  DefaultExplorationParam,
		MaxDepth:          DefaultMaxDepth,
		RolloutPolicy:     RolloutRandom,
		ValueFn:           ValueScoreDelta,
		RolloutDepthLimit: 200,
	}
}

func (c *Config) SetIterations(n int) *Config {
	c.Iterations = max(n, 1)
	return c
}

func (c *Config) SetThreads(n int) *Config {
	c.NThreads = max(n, 1)
	return c
}

func (c *Config) SetExplorationParam(v float64) *Config {
	c.ExplorationParam = max(v, 0)
	return c
}

func (c *Config) SetMaxDepth(n int) *Config {
	c.MaxDepth = n
	return c
}

func (c *Config) SetRolloutPolicy(p RolloutPolicy) *Config {
	c.RolloutPolicy = p
	return c
}

func (c *Config) SetValueFunction(v ValueFunction) *Config {
	c.ValueFn = v
	return c
}

func (c *Config) SetUseTranspositionTable(b bool) *Config {
	c.UseTranspositionTable = b
	return c
}

func (c *Config) SetRolloutDepthLimit(n int) *Config {
	c.RolloutDepthLimit = max(n, 1)
	return c
}

func (c *Config) SetScoreLimit(n int) *Config {
	c.ScoreLimit = &n
	return c
}

func (c *Config) SetTimeLimitSeconds(s float64) *Config {
	c.TimeLimitSeconds = &s
	return c
}
