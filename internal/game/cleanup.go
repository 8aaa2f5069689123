package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/model"
)

func (m *Manager) runSweeper() {
	ticker := time.NewTicker(m.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.sweeperStop:
			return
		case <-ticker.C:
			m.mu.Lock()
			m.sweepLocked(time.Now())
			m.mu.Unlock()
		}
	}
}

// ManualCleanup runs the sweep synchronously, for admin and test use.
func (m *Manager) ManualCleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log.Info("manual cleanup triggered")
	m.sweepLocked(time.Now())
}

// sweepLocked evicts stale rooms and players. Room-level conditions are
// checked in priority order; the first match deletes the whole room.
// Otherwise individual long-disconnected players are evicted with the same
// host-transfer and game-end rules as an explicit leave. Callers must
// hold m.mu.
func (m *Manager) sweepLocked(now time.Time) {
	type eviction struct {
		roomID string
		reason string
	}
	var evictions []eviction

	for id, room := range m.rooms {
		age := now.Sub(room.CreatedAt)

		var reason string
		switch {
		case len(room.Players) == 1 && age > m.cfg.SinglePlayerTimeout:
			reason = "single player timeout"
		case room.ConnectedCount() == 0 && age > m.cfg.DisconnectedPlayerTimeout:
			reason = "all players disconnected"
		case room.Status == model.RoomFinished && age > m.cfg.FinishedGameTimeout:
			reason = "finished game timeout"
		case room.Status == model.RoomWaiting && age > m.cfg.InactiveWaitingTimeout:
			reason = "inactive waiting room timeout"
		}

		if reason != "" {
			evictions = append(evictions, eviction{roomID: id, reason: reason})
			continue
		}
		m.evictStalePlayersLocked(room, now)
	}

	for _, e := range evictions {
		room := m.rooms[e.roomID]
		m.log.WithFields(logrus.Fields{
			"room":   e.roomID,
			"name":   room.Name,
			"reason": e.reason,
		}).Info("cleaning up room")
		m.deleteRoomLocked(e.roomID)
	}
	if len(evictions) > 0 {
		m.log.WithFields(logrus.Fields{
			"removed":   len(evictions),
			"remaining": len(m.rooms),
		}).Info("room cleanup finished")
	}
}

// evictStalePlayersLocked removes players disconnected longer than the
// retention window. Callers must hold m.mu.
func (m *Manager) evictStalePlayersLocked(room *model.Room, now time.Time) {
	var stale []*model.Player
	for _, p := range room.Players {
		if !p.IsConnected && p.DisconnectedAt != nil &&
			now.Sub(*p.DisconnectedAt) > m.cfg.DisconnectedPlayerTimeout {
			stale = append(stale, p)
		}
	}
	for _, p := range stale {
		m.log.WithFields(logrus.Fields{
			"room":   room.ID,
			"player": p.Name,
		}).Info("removing disconnected player")
		if m.removePlayerLocked(room, p.ID) {
			return
		}
	}
}
