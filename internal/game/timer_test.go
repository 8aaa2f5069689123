package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keatonrproud/bad-cards/internal/model"
)

func TestRoundTimerCountsDownFromDeadline(t *testing.T) {
	m := newTestManager(t, Config{TickInterval: 20 * time.Millisecond})
	room, hostID, err := m.CreateRoom("Speed", "Alice", 0, 0, 5)
	require.NoError(t, err)
	_, _, err = m.JoinRoom(room.ID, "Bob")
	require.NoError(t, err)
	_, _, err = m.JoinRoom(room.ID, "Charlie")
	require.NoError(t, err)
	_, err = m.StartGame(room.ID, hostID)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var remaining int
		if err := m.WithRoom(room.ID, func(r *model.Room) {
			remaining = r.CurrentRound.TimeRemaining
		}); err != nil {
			return false
		}
		return remaining < 5
	}, 3*time.Second, 25*time.Millisecond)
}

func TestRoundTimerExpiryStartsNextRound(t *testing.T) {
	m := newTestManager(t, Config{TickInterval: 20 * time.Millisecond})
	room, hostID, err := m.CreateRoom("Speed", "Alice", 0, 0, 1)
	require.NoError(t, err)
	_, _, err = m.JoinRoom(room.ID, "Bob")
	require.NoError(t, err)
	_, _, err = m.JoinRoom(room.ID, "Charlie")
	require.NoError(t, err)
	_, err = m.StartGame(room.ID, hostID)
	require.NoError(t, err)

	// Nobody plays, so expiry voids round one and deals round two.
	require.Eventually(t, func() bool {
		var rounds int
		if err := m.WithRoom(room.ID, func(r *model.Room) {
			rounds = len(r.Rounds)
		}); err != nil {
			return false
		}
		return rounds >= 2
	}, 5*time.Second, 25*time.Millisecond)
}

func TestJudgeDecisionStopsTimer(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)
	_, err := m.StartGame(roomID, ids["Alice"])
	require.NoError(t, err)
	submitAllPlays(t, m, roomID, ids)

	m.mu.Lock()
	_, running := m.timers[roomID]
	m.mu.Unlock()
	assert.True(t, running)

	_, _, err = m.JudgePlay(roomID, ids["Alice"], ids["Bob"])
	require.NoError(t, err)

	m.mu.Lock()
	_, running = m.timers[roomID]
	m.mu.Unlock()
	assert.False(t, running)
}

func TestTimerDrivenMutationsNotify(t *testing.T) {
	m := newTestManager(t, Config{TickInterval: 20 * time.Millisecond})

	notified := make(chan string, 64)
	m.OnRoomMutated(func(room *model.Room) {
		select {
		case notified <- room.ID:
		default:
		}
	})

	room, hostID, err := m.CreateRoom("Speed", "Alice", 0, 0, 5)
	require.NoError(t, err)
	_, _, err = m.JoinRoom(room.ID, "Bob")
	require.NoError(t, err)
	_, _, err = m.JoinRoom(room.ID, "Charlie")
	require.NoError(t, err)
	_, err = m.StartGame(room.ID, hostID)
	require.NoError(t, err)

	select {
	case id := <-notified:
		assert.Equal(t, room.ID, id)
	case <-time.After(3 * time.Second):
		t.Fatal("no mutation callback from timer ticks")
	}
}
