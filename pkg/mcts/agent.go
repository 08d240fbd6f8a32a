package mcts

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/student/tetris-mcts/pkg/tetris"
)

// Agent drives one family of MCTS placement decisions: a Config, a
// deterministic root PRNG, and (when enabled) a transposition table that
// persists across ChooseAction calls within an episode.
type Agent struct {
	Config *Config

	rng *rand.Rand
	tt  map[stateKey]*ttEntry
	mu  sync.Mutex
}

// NewAgent creates an Agent from cfg, seeded deterministically.
func NewAgent(cfg *Config, seed int64) *Agent {
	a := &Agent{
		Config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
	if cfg.UseTranspositionTable {
		a.tt = make(map[stateKey]*ttEntry)
	}
	return a
}

// NewDefaultAgent configures an Agent with the reference engine's default
// preset: random rollouts, score-delta value, no transposition table.
func NewDefaultAgent(seed int64) *Agent {
	cfg := DefaultConfig().SetRolloutPolicy(RolloutRandom).SetUseTranspositionTable(false)
	return NewAgent(cfg, seed)
}

// NewGreedyRolloutAgent configures an Agent whose rollouts use the greedy
// one-ply policy instead of uniform-random actions.
func NewGreedyRolloutAgent(seed int64) *Agent {
	cfg := DefaultConfig().SetRolloutPolicy(RolloutGreedy).SetUseTranspositionTable(false)
	return NewAgent(cfg, seed)
}

// NewTranspositionAgent configures an Agent with greedy rollouts plus a
// persistent transposition table shared across workers and search calls.
func NewTranspositionAgent(seed int64) *Agent {
	cfg := DefaultConfig().SetRolloutPolicy(RolloutGreedy).SetUseTranspositionTable(true)
	return NewAgent(cfg, seed)
}

// OnEpisodeStart resets per-episode state: the transposition table.
func (a *Agent) OnEpisodeStart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Config.UseTranspositionTable {
		a.tt = make(map[stateKey]*ttEntry)
	}
}

// OnEpisodeEnd is a no-op hook, kept symmetric with OnEpisodeStart for
// collaborators that want a matching pair of lifecycle callbacks.
func (a *Agent) OnEpisodeEnd() {}

// workerSplit divides iterations across threads the way the reference
// engine's root-parallel split does: clamp the worker count to
// [1, min(iterations, threads)], give the first iterations%workerCount
// workers one extra iteration each, and draw each worker's seed from the
// agent's own PRNG sequentially before any worker starts, so the split is
// reproducible regardless of how goroutines are scheduled.
func workerSplit(iterations, threads int, rng *rand.Rand) (perWorker []int, seeds []int64) {
	workerCount := threads
	if workerCount > iterations {
		workerCount = iterations
	}
	if workerCount < 1 {
		workerCount = 1
	}

	base := iterations / workerCount
	remainder := iterations % workerCount

	perWorker = make([]int, workerCount)
	seeds = make([]int64, workerCount)
	for i := 0; i < workerCount; i++ {
		n := base
		if i < remainder {
			n++
		}
		perWorker[i] = n
		seeds[i] = rng.Int63()
	}
	return perWorker, seeds
}

// ChooseAction runs the configured root-parallel search from env and
// returns the action with the highest mean backpropagated value among
// root actions that received at least one visit, falling back to a
// uniform-random legal action (and, failing that, the zero Action) per
// the engine's silent-default error policy.
func (a *Agent) ChooseAction(ctx context.Context, env *tetris.Env) tetris.Action {
	if a.Config.Iterations <= 0 || a.Config.MaxDepth <= 0 || a.Config.ExplorationParam <= 0 {
		return tetris.Action{}
	}

	legal := env.ValidActions()
	if len(legal) == 0 {
		return tetris.Action{}
	}

	perWorker, seeds := workerSplit(a.Config.Iterations, a.Config.NThreads, a.rng)

	type partial struct {
		stats   []actionStat
		tt      map[stateKey]*ttEntry
		initTT  map[stateKey]ttEntry
	}
	results := make([]partial, len(perWorker))

	g, _ := errgroup.WithContext(ctx)
	for w := range perWorker {
		w := w
		g.Go(func() error {
			workerCfg := *a.Config
			workerCfg.Iterations = perWorker[w]
			workerRng := rand.New(rand.NewSource(seeds[w]))

			var localTT map[stateKey]*ttEntry
			var initTT map[stateKey]ttEntry
			if a.Config.UseTranspositionTable {
				localTT = make(map[stateKey]*ttEntry)
				initTT = make(map[stateKey]ttEntry)
				a.mu.Lock()
				for k, v := range a.tt {
					cp := *v
					localTT[k] = &cp
					initTT[k] = cp
				}
				a.mu.Unlock()
			}

			results[w] = partial{
				stats:  runSearch(env.Clone(), &workerCfg, workerRng, localTT),
				tt:     localTT,
				initTT: initTT,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		klog.V(1).Infof("mcts: worker error, falling back: %v", err)
		return legal[a.rng.Intn(len(legal))]
	}

	merged := make(map[tetris.Action]*actionStat)
	for _, r := range results {
		for _, s := range r.stats {
			m, ok := merged[s.Action]
			if !ok {
				m = &actionStat{Action: s.Action}
				merged[s.Action] = m
			}
			m.Visits += s.Visits
			m.TotalValue += s.TotalValue
		}
	}

	if a.Config.UseTranspositionTable {
		// Merge each worker's delta (final - snapshot-at-start) into the
		// agent's persistent table, so concurrent workers' contributions
		// accumulate instead of clobbering each other.
		a.mu.Lock()
		for _, r := range results {
			for k, v := range r.tt {
				init := r.initTT[k]
				dVisits := v.Visits - init.Visits
				dValue := v.TotalValue - init.TotalValue
				e, ok := a.tt[k]
				if !ok {
					e = &ttEntry{}
					a.tt[k] = e
				}
				e.Visits += dVisits
				e.TotalValue += dValue
			}
		}
		a.mu.Unlock()
	}

	candidates := make([]*actionStat, 0, len(merged))
	for _, s := range merged {
		candidates = append(candidates, s)
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai, aj := candidates[i].Action, candidates[j].Action
		if ai.Rotation != aj.Rotation {
			return ai.Rotation < aj.Rotation
		}
		if ai.TargetX != aj.TargetX {
			return ai.TargetX < aj.TargetX
		}
		return !ai.UseHold && aj.UseHold
	})

	best := tetris.Action{}
	bestMean := 0.0
	haveBest := false
	for _, s := range candidates {
		if s.Visits == 0 {
			continue
		}
		mean := s.TotalValue / float64(s.Visits)
		if !haveBest || mean > bestMean {
			bestMean = mean
			best = s.Action
			haveBest = true
		}
	}

	if !haveBest {
		klog.V(2).Infof("mcts: no visited root action, falling back to random legal action")
		return legal[a.rng.Intn(len(legal))]
	}

	klog.V(2).Infof("mcts: chose action %+v mean=%.3f workers=%d", best, bestMean, len(perWorker))
	return best
}
