package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/keatonrproud/bad-cards/internal/model"
)

var miniItemTypes = []model.MiniItemType{model.MiniStar, model.MiniHeart, model.MiniZap}

// MiniJoin registers a player in the waiting-room minigame at a random
// position and makes sure the item spawn loop is running.
func (m *Manager) MiniJoin(roomID, playerID string) (*model.WaitingMini, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.FindPlayer(playerID) == nil {
		return nil, ErrPlayerNotFound
	}

	mini := m.ensureMiniLocked(room)
	if _, ok := mini.Players[playerID]; !ok {
		mini.Players[playerID] = &model.MiniCursor{
			X: 20 + rand.Float64()*(mini.Width-40),
			Y: 20 + rand.Float64()*(mini.Height-40),
		}
	}
	m.ensureMiniSpawnerLocked(room.ID)
	return mini, nil
}

// MiniMove moves a player's cursor, clamped to the field, and collects any
// item within the collision radius for a point apiece.
func (m *Manager) MiniMove(roomID, playerID string, x, y float64) (*model.WaitingMini, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	mini := m.ensureMiniLocked(room)
	cursor, ok := mini.Players[playerID]
	if !ok {
		return mini, nil
	}

	cursor.X = clamp(x, 20, mini.Width-20)
	cursor.Y = clamp(y, 20, mini.Height-20)

	kept := mini.Items[:0]
	for _, item := range mini.Items {
		if math.Abs(item.X-cursor.X) < m.cfg.MiniCollisionRadius &&
			math.Abs(item.Y-cursor.Y) < m.cfg.MiniCollisionRadius {
			cursor.Score++
			continue
		}
		kept = append(kept, item)
	}
	mini.Items = kept
	return mini, nil
}

// ensureMiniLocked lazily creates the minigame state. Callers must hold m.mu.
func (m *Manager) ensureMiniLocked(room *model.Room) *model.WaitingMini {
	if room.WaitingMini == nil {
		room.WaitingMini = &model.WaitingMini{
			Width:   m.cfg.MiniWidth,
			Height:  m.cfg.MiniHeight,
			Items:   []model.MiniItem{},
			Players: make(map[string]*model.MiniCursor),
		}
	}
	return room.WaitingMini
}

// ensureMiniSpawnerLocked starts the per-room item spawn loop if it is not
// already running. Callers must hold m.mu.
func (m *Manager) ensureMiniSpawnerLocked(roomID string) {
	if m.shutdown {
		return
	}
	if _, ok := m.spawners[roomID]; ok {
		return
	}
	stop := make(chan struct{})
	m.spawners[roomID] = stop
	go m.runMiniSpawner(roomID, stop)
}

// stopMiniSpawnerLocked stops the room's spawn loop if one is running.
// Callers must hold m.mu.
func (m *Manager) stopMiniSpawnerLocked(roomID string) {
	if ch, ok := m.spawners[roomID]; ok {
		close(ch)
		delete(m.spawners, roomID)
	}
}

func (m *Manager) runMiniSpawner(roomID string, stop chan struct{}) {
	ticker := time.NewTicker(m.cfg.MiniSpawnInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if m.spawnMiniItem(roomID, stop) {
				return
			}
		}
	}
}

// spawnMiniItem adds one item if the room is still waiting and under the
// active cap. Reports whether the spawn loop should stop.
func (m *Manager) spawnMiniItem(roomID string, stop chan struct{}) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.spawners[roomID] != stop {
		return true
	}
	room, ok := m.rooms[roomID]
	if !ok || room.Status != model.RoomWaiting {
		delete(m.spawners, roomID)
		return true
	}

	mini := m.ensureMiniLocked(room)
	if len(mini.Items) < m.cfg.MiniActiveCap {
		mini.Items = append(mini.Items, model.MiniItem{
			ID:   uuid.NewString(),
			X:    15 + rand.Float64()*(mini.Width-30),
			Y:    15 + rand.Float64()*(mini.Height-30),
			Type: miniItemTypes[rand.Intn(len(miniItemTypes))],
		})
		m.notifyLocked(room)
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
