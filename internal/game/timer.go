package game

import (
	"math"
	"time"

	"github.com/keatonrproud/bad-cards/internal/model"
)

// roundTimer is the countdown for one room's in-progress round. Remaining
// time is recomputed from the absolute deadline on every tick so a slow
// tick cannot drift the clock.
type roundTimer struct {
	roomID   string
	deadline time.Time
	stop     chan struct{}
}

// startRoundTimerLocked arms a countdown for the room, replacing any
// existing one (at most one live timer per room). Callers must hold m.mu.
func (m *Manager) startRoundTimerLocked(room *model.Room, d time.Duration) {
	m.stopRoundTimerLocked(room.ID)
	if m.shutdown {
		return
	}
	t := &roundTimer{
		roomID:   room.ID,
		deadline: time.Now().Add(d),
		stop:     make(chan struct{}),
	}
	m.timers[room.ID] = t
	go m.runRoundTimer(t)
}

// stopRoundTimerLocked cancels the room's timer if one is running. Safe to
// call when none is. Callers must hold m.mu.
func (m *Manager) stopRoundTimerLocked(roomID string) {
	if t, ok := m.timers[roomID]; ok {
		close(t.stop)
		delete(m.timers, roomID)
	}
}

func (m *Manager) runRoundTimer(t *roundTimer) {
	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			if m.tickRoundTimer(t) {
				return
			}
		}
	}
}

// tickRoundTimer advances one tick and reports whether the timer is done.
// A timer that has been replaced or cancelled finds itself missing from
// the table and exits without touching anything.
func (m *Manager) tickRoundTimer(t *roundTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timers[t.roomID] != t {
		return true
	}
	room, ok := m.rooms[t.roomID]
	if !ok || room.CurrentRound == nil {
		delete(m.timers, t.roomID)
		return true
	}

	remaining := int(math.Ceil(time.Until(t.deadline).Seconds()))
	if remaining < 0 {
		remaining = 0
	}
	room.CurrentRound.TimeRemaining = remaining

	if remaining > 0 {
		m.notifyLocked(room)
		return false
	}

	// Expired. Deregister first so the timeout handler can arm a
	// replacement without closing our own stop channel.
	delete(m.timers, t.roomID)
	m.handleRoundTimeoutLocked(room)
	m.notifyLocked(room)
	return true
}
