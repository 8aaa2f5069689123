package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keatonrproud/bad-cards/internal/model"
)

func TestMiniJoinPlacesCursorInsideField(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)

	mini, err := m.MiniJoin(roomID, ids["Bob"])
	require.NoError(t, err)

	assert.Equal(t, 720.0, mini.Width)
	assert.Equal(t, 420.0, mini.Height)

	cursor := mini.Players[ids["Bob"]]
	require.NotNil(t, cursor)
	assert.GreaterOrEqual(t, cursor.X, 20.0)
	assert.LessOrEqual(t, cursor.X, mini.Width-20)
	assert.GreaterOrEqual(t, cursor.Y, 20.0)
	assert.LessOrEqual(t, cursor.Y, mini.Height-20)
	assert.Zero(t, cursor.Score)

	// Joining twice keeps the existing cursor.
	again, err := m.MiniJoin(roomID, ids["Bob"])
	require.NoError(t, err)
	assert.Same(t, cursor, again.Players[ids["Bob"]])
}

func TestMiniJoinRejectsStrangers(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, _ := threePlayerRoom(t, m, 0)

	_, err := m.MiniJoin(roomID, "nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	_, err = m.MiniJoin("missing", "nobody")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestMiniMoveClampsToField(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)
	_, err := m.MiniJoin(roomID, ids["Bob"])
	require.NoError(t, err)

	mini, err := m.MiniMove(roomID, ids["Bob"], -100, 9999)
	require.NoError(t, err)

	cursor := mini.Players[ids["Bob"]]
	assert.Equal(t, 20.0, cursor.X)
	assert.Equal(t, mini.Height-20, cursor.Y)
}

func TestMiniMoveCollectsNearbyItems(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)
	_, err := m.MiniJoin(roomID, ids["Bob"])
	require.NoError(t, err)

	require.NoError(t, m.WithRoom(roomID, func(room *model.Room) {
		room.WaitingMini.Items = []model.MiniItem{
			{ID: "near", X: 110, Y: 110, Type: model.MiniStar},
			{ID: "far", X: 400, Y: 300, Type: model.MiniHeart},
		}
	}))

	mini, err := m.MiniMove(roomID, ids["Bob"], 100, 100)
	require.NoError(t, err)

	assert.Equal(t, 1, mini.Players[ids["Bob"]].Score)
	require.Len(t, mini.Items, 1)
	assert.Equal(t, "far", mini.Items[0].ID)
}

func TestMiniSpawnerAddsItemsWhileWaiting(t *testing.T) {
	m := newTestManager(t, Config{MiniSpawnInterval: 10 * time.Millisecond})
	roomID, ids := threePlayerRoom(t, m, 0)
	_, err := m.MiniJoin(roomID, ids["Alice"])
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var items int
		if err := m.WithRoom(roomID, func(room *model.Room) {
			items = len(room.WaitingMini.Items)
		}); err != nil {
			return false
		}
		return items > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStartGameStopsMinigame(t *testing.T) {
	m := newTestManager(t, Config{})
	roomID, ids := threePlayerRoom(t, m, 0)
	_, err := m.MiniJoin(roomID, ids["Alice"])
	require.NoError(t, err)

	room, err := m.StartGame(roomID, ids["Alice"])
	require.NoError(t, err)
	assert.Nil(t, room.WaitingMini)

	m.mu.Lock()
	_, running := m.spawners[roomID]
	m.mu.Unlock()
	assert.False(t, running)
}
