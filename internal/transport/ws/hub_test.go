package ws

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHub(log)
}

func newTestConn(roomID, playerID string) *Connection {
	return &Connection{RoomID: roomID, PlayerID: playerID, Send: make(chan []byte, 16)}
}

func recvEvent(t *testing.T, conn *Connection) Event {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		require.True(t, ok, "send channel closed")
		var evt Event
		require.NoError(t, json.Unmarshal(data, &evt))
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, conn *Connection) {
	t.Helper()
	select {
	case data := <-conn.Send:
		t.Fatalf("unexpected event: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcastToRoom(t *testing.T) {
	hub := newTestHub()

	alice := newTestConn("room-1", "alice")
	bob := newTestConn("room-1", "bob")
	eve := newTestConn("room-2", "eve")
	hub.Register(alice)
	hub.Register(bob)
	hub.Register(eve)

	hub.BroadcastToRoom("room-1", EvtRoomUpdate, map[string]string{"hello": "there"})

	for _, conn := range []*Connection{alice, bob} {
		evt := recvEvent(t, conn)
		assert.Equal(t, EvtRoomUpdate, evt.Type)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(evt.Payload, &payload))
		assert.Equal(t, "there", payload["hello"])
	}
	assertNoEvent(t, eve)
}

func TestSendToPlayer(t *testing.T) {
	hub := newTestHub()

	alice := newTestConn("room-1", "alice")
	bob := newTestConn("room-1", "bob")
	hub.Register(alice)
	hub.Register(bob)

	hub.SendToPlayer("room-1", "bob", EvtError, map[string]string{"message": "nope"})

	evt := recvEvent(t, bob)
	assert.Equal(t, EvtError, evt.Type)
	assertNoEvent(t, alice)
}

func TestRegisterReplacesExistingConnection(t *testing.T) {
	hub := newTestHub()

	first := newTestConn("room-1", "alice")
	second := newTestConn("room-1", "alice")
	hub.Register(first)
	hub.Register(second)

	// The replaced connection's channel is closed so its write pump exits.
	select {
	case _, ok := <-first.Send:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("replaced connection not closed")
	}

	hub.BroadcastToRoom("room-1", EvtRoomUpdate, nil)
	evt := recvEvent(t, second)
	assert.Equal(t, EvtRoomUpdate, evt.Type)
}

func TestUnregisterIgnoresStaleConnection(t *testing.T) {
	hub := newTestHub()

	first := newTestConn("room-1", "alice")
	second := newTestConn("room-1", "alice")
	hub.Register(first)
	hub.Register(second)

	// Unregistering the already-replaced connection must not tear down the
	// live one.
	hub.Unregister(first)

	hub.BroadcastToRoom("room-1", EvtRoomUpdate, nil)
	evt := recvEvent(t, second)
	assert.Equal(t, EvtRoomUpdate, evt.Type)
}

func TestUnregisterClosesConnection(t *testing.T) {
	hub := newTestHub()

	conn := newTestConn("room-1", "alice")
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("unregistered connection not closed")
	}
}
