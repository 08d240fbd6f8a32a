package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEpisodeRecordCopiesEnvState(t *testing.T) {
	e := NewEnv(3)
	e.Lines = 4
	e.Turns = 10
	e.Holds = 2
	e.Score = 500

	rec := NewEpisodeRecord(e, "mcts-default", "headless", "iterations=1000", "run-1", 1, 1.5, EndGameOver)

	require.Equal(t, "mcts-default", rec.AgentName)
	require.Equal(t, "headless", rec.ModeName)
	require.Equal(t, "iterations=1000", rec.AgentConfig)
	require.Equal(t, "run-1", rec.RunID)
	require.Equal(t, 1, rec.EpisodeIndex)
	require.Equal(t, 500, rec.Score)
	require.Equal(t, 4, rec.TotalLines)
	require.Equal(t, 10, rec.TotalTurns)
	require.Equal(t, 2, rec.HoldsUsed)
	require.Equal(t, 1.5, rec.ElapsedSeconds)
	require.Equal(t, EndGameOver, rec.EndReason)
}

func TestEndReasonValuesMatchReferenceStrings(t *testing.T) {
	require.Equal(t, EndReason("game_over"), EndGameOver)
	require.Equal(t, EndReason("score_limit"), EndScoreLimit)
	require.Equal(t, EndReason("time_limit"), EndTimeLimit)
	require.Equal(t, EndReason("max_turns"), EndMaxTurns)
}
