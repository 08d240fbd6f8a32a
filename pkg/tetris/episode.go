package tetris

// EndReason names why an episode's run loop stopped, mirroring the
// string values original_source's batch runner assigns to its endReason
// local before copying it into an EpisodeReport.
type EndReason string

const (
	EndGameOver   EndReason = "game_over"
	EndScoreLimit EndReason = "score_limit"
	EndTimeLimit  EndReason = "time_limit"
	EndMaxTurns   EndReason = "max_turns"
)

// EpisodeRecord is a plain summary of one completed episode, mirroring
// original_source's EpisodeReport.hpp field-for-field. It carries no
// persistence logic; writing it to disk is a collaborator's concern.
type EpisodeRecord struct {
	AgentName      string
	ModeName       string
	AgentConfig    string
	RunID          string
	EpisodeIndex   int
	Score          int
	TotalLines     int
	TotalTurns     int
	HoldsUsed      int
	ElapsedSeconds float64
	EndReason      EndReason
}

// NewEpisodeRecord builds an EpisodeRecord from env's terminal state plus
// the run metadata a driver accumulates around it.
func NewEpisodeRecord(env *Env, agentName, modeName, agentConfig, runID string, episodeIndex int, elapsedSeconds float64, reason EndReason) EpisodeRecord {
	return EpisodeRecord{
		AgentName:      agentName,
		ModeName:       modeName,
		AgentConfig:    agentConfig,
		RunID:          runID,
		EpisodeIndex:   episodeIndex,
		Score:          int(env.Score),
		TotalLines:     env.Lines,
		TotalTurns:     env.Turns,
		HoldsUsed:      env.Holds,
		ElapsedSeconds: elapsedSeconds,
		EndReason:      reason,
	}
}
