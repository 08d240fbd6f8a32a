package mcts

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/student/tetris-mcts/pkg/tetris"
)

func TestWorkerSplitDistributesRemainder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	perWorker, seeds := workerSplit(10, 3, rng)
	require.Len(t, perWorker, 3)
	require.Len(t, seeds, 3)

	total := 0
	for _, n := range perWorker {
		total += n
	}
	require.Equal(t, 10, total)
	require.GreaterOrEqual(t, perWorker[0], perWorker[len(perWorker)-1])
}

func TestWorkerSplitClampsToIterations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	perWorker, _ := workerSplit(2, 8, rng)
	require.Len(t, perWorker, 2)
}

func TestChooseActionReturnsLegalAction(t *testing.T) {
	cfg := DefaultConfig().SetIterations(50).SetThreads(2)
	agent := NewAgent(cfg, 5)
	env := tetris.NewEnv(21)

	action := agent.ChooseAction(context.Background(), env)

	legal := env.ValidActions()
	found := false
	for _, a := range legal {
		if a == action {
			found = true
			break
		}
	}
	require.True(t, found)
}

func TestTranspositionAgentPersistsTableAcrossCalls(t *testing.T) {
	agent := NewTranspositionAgent(9)
	agent.Config.SetIterations(30).SetThreads(2)
	env := tetris.NewEnv(33)

	_ = agent.ChooseAction(context.Background(), env)
	require.NotEmpty(t, agent.tt)

	agent.OnEpisodeStart()
	require.Empty(t, agent.tt)
}

func TestRunSearchVisitCountsSumToIterations(t *testing.T) {
	cfg := DefaultConfig().SetIterations(20)
	env := tetris.NewEnv(2)
	rng := rand.New(rand.NewSource(1))

	stats := runSearch(env, cfg, rng, nil)

	total := int64(0)
	for _, s := range stats {
		total += s.Visits
	}
	require.Equal(t, int64(20), total)
}
