package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/model"
)

// startRoundLocked begins the next round: the judge seat rotates by one
// position each round, a prompt is drawn, and the submission timer starts.
// Callers must hold m.mu.
func (m *Manager) startRoundLocked(room *model.Room) {
	number := len(room.Rounds) + 1
	judge := room.Players[(number-1)%len(room.Players)]

	round := &model.Round{
		ID:            uuid.NewString(),
		Number:        number,
		Prompt:        m.prompts.DrawOne(),
		JudgeID:       judge.ID,
		Plays:         []model.Play{},
		Phase:         model.RoundPlaying,
		TimeRemaining: room.Settings.RoundTimer,
	}
	room.CurrentRound = round
	room.Rounds = append(room.Rounds, round)

	m.startRoundTimerLocked(room, time.Duration(room.Settings.RoundTimer)*time.Second)
}

// PlayCards submits a player's answer cards for the current round. The
// played cards leave the player's hand and the same number of replacements
// are dealt, so hand size is unchanged. When the last non-judge player has
// played, the round moves to judging and the judge timer starts.
func (m *Manager) PlayCards(roomID, playerID string, cardIDs []string) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	round := room.CurrentRound
	if round == nil {
		return nil, ErrNoCurrentRound
	}
	if round.Phase != model.RoundPlaying {
		return nil, ErrNotAcceptingPlays
	}
	if round.JudgeID == playerID {
		return nil, ErrJudgeCannotPlay
	}
	if round.PlayBy(playerID) != nil {
		return nil, ErrAlreadyPlayed
	}
	if len(cardIDs) != round.Prompt.Blanks {
		return nil, ErrWrongCardCount
	}
	// A repeated id would survive the hand checks but only be removed
	// once, recording a play with fewer cards than the prompt's blanks.
	seen := make(map[string]struct{}, len(cardIDs))
	for _, id := range cardIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrWrongCardCount
		}
		seen[id] = struct{}{}
	}
	player := room.FindPlayer(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	for _, id := range cardIDs {
		if !player.HasCard(id) {
			return nil, ErrCardNotInHand
		}
	}

	played := make([]model.AnswerCard, 0, len(cardIDs))
	for _, id := range cardIDs {
		for i, c := range player.Hand {
			if c.ID == id {
				played = append(played, c)
				player.Hand = append(player.Hand[:i], player.Hand[i+1:]...)
				break
			}
		}
	}
	player.Hand = append(player.Hand, m.answers.Draw(len(played))...)

	round.Plays = append(round.Plays, model.Play{PlayerID: playerID, Cards: played})

	if len(round.Plays) == len(room.Players)-1 {
		round.Phase = model.RoundJudging
		round.TimeRemaining = room.Settings.JudgeTimer
		m.startRoundTimerLocked(room, time.Duration(room.Settings.JudgeTimer)*time.Second)
	}
	return room, nil
}

// JudgePlay records the judge's pick. The target may reference the winning
// play by its player id or by any card id inside it. Reaching the win
// threshold finishes the game.
func (m *Manager) JudgePlay(roomID, judgeID, target string) (*model.Room, *model.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	round := room.CurrentRound
	if round == nil {
		return nil, nil, ErrNoCurrentRound
	}
	if round.JudgeID != judgeID {
		return nil, nil, ErrNotJudge
	}
	if round.Phase != model.RoundJudging {
		return nil, nil, ErrNotJudgingPhase
	}

	var winning *model.Play
	for i := range round.Plays {
		play := &round.Plays[i]
		if play.PlayerID == target {
			winning = play
			break
		}
		for _, c := range play.Cards {
			if c.ID == target {
				winning = play
				break
			}
		}
		if winning != nil {
			break
		}
	}
	if winning == nil {
		return nil, nil, ErrInvalidPlaySelection
	}
	// A play can outlive its player if they left mid-round; such a play
	// cannot win.
	winner := room.FindPlayer(winning.PlayerID)
	if winner == nil {
		return nil, nil, ErrInvalidPlaySelection
	}

	round.WinningPlayerID = winning.PlayerID
	round.Phase = model.RoundResults
	m.stopRoundTimerLocked(room.ID)
	winner.Score++

	if winner.Score >= room.Settings.MaxScore {
		room.Status = model.RoomFinished
		round.Phase = model.RoundCompleted
		m.log.WithFields(logrus.Fields{
			"room":   room.ID,
			"winner": winner.Name,
			"score":  winner.Score,
		}).Info("game finished")
	}
	return room, winner, nil
}

// NextRound completes a results-phase round and starts the next one.
// Host-initiated.
func (m *Manager) NextRound(roomID, playerID string) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.HostID != playerID && room.CurrentRound != nil {
		return nil, ErrNotHost
	}
	if room.Status == model.RoomFinished {
		return nil, ErrGameFinished
	}
	if room.CurrentRound == nil || room.CurrentRound.Phase != model.RoundResults {
		return nil, ErrRoundNotReady
	}

	room.CurrentRound.Phase = model.RoundCompleted
	m.startRoundLocked(room)
	return room, nil
}

// handleRoundTimeoutLocked resolves a phase whose time ran out. A timeout
// that observes a phase already advanced by player action must no-op; the
// phase switch below is that guard. Callers must hold m.mu.
func (m *Manager) handleRoundTimeoutLocked(room *model.Room) {
	round := room.CurrentRound
	if round == nil || room.Status != model.RoomActive {
		return
	}

	switch round.Phase {
	case model.RoundPlaying:
		if len(round.Plays) > 0 {
			round.Phase = model.RoundJudging
			round.TimeRemaining = room.Settings.JudgeTimer
			m.startRoundTimerLocked(room, time.Duration(room.Settings.JudgeTimer)*time.Second)
			m.log.WithField("room", room.ID).Info("submission time up, judging started")
			return
		}
		// Nobody played; the round is void.
		round.Phase = model.RoundCompleted
		m.log.WithField("room", room.ID).Info("submission time up with no plays, skipping round")
		m.startRoundLocked(room)

	case model.RoundJudging:
		if len(round.Plays) == 0 {
			round.Phase = model.RoundCompleted
			m.startRoundLocked(room)
			return
		}
		pick := round.Plays[rand.Intn(len(round.Plays))]
		round.WinningPlayerID = pick.PlayerID
		round.Phase = model.RoundCompleted

		winner := room.FindPlayer(pick.PlayerID)
		if winner != nil {
			winner.Score++
		}
		m.log.WithFields(logrus.Fields{
			"room":   room.ID,
			"winner": pick.PlayerID,
		}).Info("judge time up, winner picked at random")

		if winner != nil && winner.Score >= room.Settings.MaxScore {
			room.Status = model.RoomFinished
			room.CurrentRound = nil
			m.stopRoundTimerLocked(room.ID)
			return
		}
		m.startRoundLocked(room)

	default:
		// Phase already resolved by a player action racing this timeout.
	}
}
