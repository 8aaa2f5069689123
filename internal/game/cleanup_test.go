package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keatonrproud/bad-cards/internal/model"
)

func backdateRoom(t *testing.T, m *Manager, roomID string, age time.Duration) {
	t.Helper()
	require.NoError(t, m.WithRoom(roomID, func(room *model.Room) {
		room.CreatedAt = time.Now().Add(-age)
	}))
}

func TestCleanupSinglePlayerRoom(t *testing.T) {
	m := newTestManager(t, Config{})
	room, _, err := m.CreateRoom("Lonely", "Alice", 0, 0, 0)
	require.NoError(t, err)
	backdateRoom(t, m, room.ID, 31*time.Minute)

	m.ManualCleanup()

	_, err = m.GetRoom(room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCleanupKeepsFreshSinglePlayerRoom(t *testing.T) {
	m := newTestManager(t, Config{})
	room, _, err := m.CreateRoom("Lonely", "Alice", 0, 0, 0)
	require.NoError(t, err)
	backdateRoom(t, m, room.ID, 10*time.Minute)

	m.ManualCleanup()

	_, err = m.GetRoom(room.ID)
	assert.NoError(t, err)
}

func TestCleanupFullyDisconnectedRoom(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)
	for _, id := range ids {
		_, err := m.SetPlayerConnection(roomID, id, false)
		require.NoError(t, err)
	}
	backdateRoom(t, m, roomID, 11*time.Minute)

	m.ManualCleanup()

	_, err := m.GetRoom(roomID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCleanupFinishedGame(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 1)
	playUntilFinished(t, m, roomID, ids)
	backdateRoom(t, m, roomID, 61*time.Minute)

	m.ManualCleanup()

	_, err := m.GetRoom(roomID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCleanupInactiveWaitingRoom(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, _ := threePlayerRoom(t, m, 0)
	backdateRoom(t, m, roomID, 121*time.Minute)

	m.ManualCleanup()

	_, err := m.GetRoom(roomID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCleanupKeepsActiveWaitingRoom(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, _ := threePlayerRoom(t, m, 0)
	backdateRoom(t, m, roomID, time.Hour)

	m.ManualCleanup()

	_, err := m.GetRoom(roomID)
	assert.NoError(t, err)
}

func TestCleanupEvictsLongDisconnectedPlayer(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)

	_, err := m.SetPlayerConnection(roomID, ids["Charlie"], false)
	require.NoError(t, err)
	require.NoError(t, m.WithRoom(roomID, func(room *model.Room) {
		stale := time.Now().Add(-11 * time.Minute)
		room.FindPlayer(ids["Charlie"]).DisconnectedAt = &stale
	}))

	m.ManualCleanup()

	room, err := m.GetRoom(roomID)
	require.NoError(t, err)
	assert.Len(t, room.Players, 2)
	assert.Nil(t, room.FindPlayer(ids["Charlie"]))
	assert.Equal(t, ids["Alice"], room.HostID)
}

func TestCleanupEvictedHostTransfersHost(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)

	_, err := m.SetPlayerConnection(roomID, ids["Alice"], false)
	require.NoError(t, err)
	require.NoError(t, m.WithRoom(roomID, func(room *model.Room) {
		stale := time.Now().Add(-11 * time.Minute)
		room.FindPlayer(ids["Alice"]).DisconnectedAt = &stale
	}))

	m.ManualCleanup()

	room, err := m.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, ids["Bob"], room.HostID)
	assert.True(t, room.Players[0].IsHost)
}

func TestCleanupKeepsBrieflyDisconnectedPlayer(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)

	_, err := m.SetPlayerConnection(roomID, ids["Bob"], false)
	require.NoError(t, err)

	m.ManualCleanup()

	room, err := m.GetRoom(roomID)
	require.NoError(t, err)
	assert.Len(t, room.Players, 3)
}
