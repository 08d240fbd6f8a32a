package greedy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/student/tetris-mcts/pkg/tetris"
)

func TestChooseReturnsLegalAction(t *testing.T) {
	env := tetris.NewEnv(11)
	action, ok := Choose(env)
	require.True(t, ok)

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

func TestChooseFalseWhenGameOver(t *testing.T) {
	env := tetris.NewEnv(11)
	env.State = tetris.GameOver
	_, ok := Choose(env)
	require.False(t, ok)
}
