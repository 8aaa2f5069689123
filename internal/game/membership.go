package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/model"
)

// JoinRoom adds a player to a room, or reconnects them if a player with
// the same name (case-insensitive) already exists in the room. Names
// double as reconnection keys, so new names must be unique across every
// room on the server, not just this one.
func (m *Manager) JoinRoom(roomID, playerName string) (*model.Room, string, error) {
	playerName, err := normalizeName(playerName)
	if err != nil {
		return nil, "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, "", ErrRoomNotFound
	}

	// Same name in the same room means the same human rejoining, so
	// capacity and status gates do not apply.
	for _, p := range room.Players {
		if strings.EqualFold(p.Name, playerName) {
			p.IsConnected = true
			p.DisconnectedAt = nil
			return room, p.ID, nil
		}
	}

	if len(room.Players) >= room.MaxPlayers {
		return nil, "", ErrRoomFull
	}
	if room.Status != model.RoomWaiting {
		return nil, "", ErrGameInProgress
	}
	for _, other := range m.rooms {
		for _, p := range other.Players {
			if strings.EqualFold(p.Name, playerName) {
				return nil, "", ErrNameTaken
			}
		}
	}

	player := &model.Player{
		ID:          uuid.NewString(),
		Name:        playerName,
		Hand:        []model.AnswerCard{},
		IsConnected: true,
	}
	room.Players = append(room.Players, player)
	return room, player.ID, nil
}

// LeaveRoom removes a player. The first remaining member in join order
// becomes host if the host left. Returns nil with no error when the room
// was deleted because its last player left.
func (m *Manager) LeaveRoom(roomID, playerID string) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.FindPlayer(playerID) == nil {
		return nil, ErrPlayerNotFound
	}

	if deleted := m.removePlayerLocked(room, playerID); deleted {
		return nil, nil
	}
	return room, nil
}

// removePlayerLocked removes a player from a room, transferring host and
// ending the game if the room drops below the minimum. Deletes the room
// and reports true when the last player leaves. Callers must hold m.mu.
func (m *Manager) removePlayerLocked(room *model.Room, playerID string) bool {
	idx := -1
	for i, p := range room.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	wasHost := room.Players[idx].IsHost
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)

	if len(room.Players) == 0 {
		m.deleteRoomLocked(room.ID)
		return true
	}

	if wasHost {
		next := room.Players[0]
		next.IsHost = true
		room.HostID = next.ID
	}

	if room.Status == model.RoomActive && len(room.Players) < m.cfg.MinPlayers {
		// Not enough players to continue. The round is left as-is and no
		// winner is declared.
		room.Status = model.RoomFinished
		m.stopRoundTimerLocked(room.ID)
		m.log.WithField("room", room.ID).Info("game ended: not enough players")
	}
	return false
}

// SetPlayerConnection flips a player's connection flag. Disconnecting
// stamps the time so the sweeper can evict later; this call alone never
// removes a player or transfers host, so short blips cause no churn.
func (m *Manager) SetPlayerConnection(roomID, playerID string, connected bool) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	player := room.FindPlayer(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	player.IsConnected = connected
	if connected {
		player.DisconnectedAt = nil
	} else {
		now := time.Now()
		player.DisconnectedAt = &now
	}
	return room, nil
}

// StartGame deals opening hands, zeroes scores, and begins round one.
// Host only; requires the minimum player count and a waiting room.
func (m *Manager) StartGame(roomID, playerID string) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.HostID != playerID {
		return nil, ErrNotHost
	}
	if len(room.Players) < m.cfg.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}
	if room.Status != model.RoomWaiting {
		return nil, ErrGameAlreadyActive
	}

	m.stopMiniSpawnerLocked(room.ID)
	room.WaitingMini = nil

	for _, p := range room.Players {
		p.Hand = m.answers.Draw(m.cfg.HandSize)
		p.Score = 0
	}
	room.Status = model.RoomActive
	m.startRoundLocked(room)

	m.log.WithFields(logrus.Fields{
		"room":    room.ID,
		"players": len(room.Players),
	}).Info("game started")

	return room, nil
}

// ResetGame returns a finished room to the waiting state for a rematch.
func (m *Manager) ResetGame(roomID, playerID string) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	host := room.FindPlayer(playerID)
	if host == nil || !host.IsHost {
		return nil, ErrNotHost
	}
	if room.Status != model.RoomFinished {
		return nil, ErrGameNotFinished
	}

	m.stopRoundTimerLocked(room.ID)
	room.Status = model.RoomWaiting
	room.CurrentRound = nil
	room.Rounds = []*model.Round{}
	for _, p := range room.Players {
		p.Hand = []model.AnswerCard{}
		p.Score = 0
	}
	m.ensureMiniLocked(room)

	m.log.WithField("room", room.ID).Info("game reset")
	return room, nil
}
