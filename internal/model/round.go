package model

// RoundPhase is the sub-state of the current round.
type RoundPhase string

const (
	RoundPlaying   RoundPhase = "playing"
	RoundJudging   RoundPhase = "judging"
	RoundResults   RoundPhase = "results"
	RoundCompleted RoundPhase = "completed"
)

// Play is one player's submitted set of answer cards for a round.
// Immutable once appended.
type Play struct {
	PlayerID string       `json:"playerId"`
	Cards    []AnswerCard `json:"cards"`
}

// Round holds the state of a single round. Plays are kept in submission
// order; one per non-judge player at most.
type Round struct {
	ID              string     `json:"id"`
	Number          int        `json:"roundNumber"`
	Prompt          PromptCard `json:"prompt"`
	JudgeID         string     `json:"judgeId"`
	Plays           []Play     `json:"plays"`
	WinningPlayerID string     `json:"winningPlayerId,omitempty"`
	Phase           RoundPhase `json:"phase"`
	TimeRemaining   int        `json:"timeRemaining"`
}

// PlayBy returns the play submitted by the given player, or nil.
func (r *Round) PlayBy(playerID string) *Play {
	for i := range r.Plays {
		if r.Plays[i].PlayerID == playerID {
			return &r.Plays[i]
		}
	}
	return nil
}
