package ws

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// EventType names a WebSocket event.
type EventType string

// Client events.
const (
	EvtStartGame EventType = "start-game"
	EvtResetGame EventType = "reset-game"
	EvtPlayCards EventType = "play-cards"
	EvtJudgePlay EventType = "judge-play"
	EvtNextRound EventType = "next-round"
	EvtLeaveRoom EventType = "leave-room"
	EvtMiniJoin  EventType = "mini-join"
	EvtMiniMove  EventType = "mini-move"
)

// Server events.
const (
	EvtRoomUpdate    EventType = "room-update"
	EvtGameStarted   EventType = "game-started"
	EvtRoundStarted  EventType = "round-started"
	EvtCardsPlayed   EventType = "cards-played"
	EvtRoundComplete EventType = "round-complete"
	EvtGameReset     EventType = "game-reset"
	EvtPlayerLeft    EventType = "player-left"
	EvtMiniState     EventType = "mini-state"
	EvtError         EventType = "error"
)

// Event is the WebSocket envelope format for both directions.
type Event struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for rooms.
type Hub struct {
	// roomID -> playerID -> connection
	conns map[string]map[string]*Connection

	register   chan *Connection
	unregister chan *Connection
	outbound   chan outboundEvent

	log *logrus.Logger
}

// Connection represents one player's WebSocket connection.
type Connection struct {
	RoomID   string
	PlayerID string
	Send     chan []byte
}

type outboundEvent struct {
	roomID   string
	playerID string // empty means every player in the room
	data     []byte
}

// NewHub creates a hub and starts its coordination loop.
func NewHub(log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.New()
	}
	h := &Hub{
		conns:      make(map[string]map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		outbound:   make(chan outboundEvent, 256),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			if h.conns[conn.RoomID] == nil {
				h.conns[conn.RoomID] = make(map[string]*Connection)
			}
			// A replaced connection (page refresh, second tab) is closed in
			// favor of the new one.
			if old, ok := h.conns[conn.RoomID][conn.PlayerID]; ok {
				close(old.Send)
			}
			h.conns[conn.RoomID][conn.PlayerID] = conn
			h.log.WithFields(logrus.Fields{
				"room":   conn.RoomID,
				"player": conn.PlayerID,
			}).Debug("ws connected")

		case conn := <-h.unregister:
			if players, ok := h.conns[conn.RoomID]; ok {
				if cur, ok := players[conn.PlayerID]; ok && cur == conn {
					delete(players, conn.PlayerID)
					close(conn.Send)
					if len(players) == 0 {
						delete(h.conns, conn.RoomID)
					}
				}
			}

		case evt := <-h.outbound:
			players, ok := h.conns[evt.roomID]
			if !ok {
				continue
			}
			if evt.playerID != "" {
				if conn, ok := players[evt.playerID]; ok {
					conn.trySend(evt.data)
				}
				continue
			}
			for _, conn := range players {
				conn.trySend(evt.data)
			}
		}
	}
}

// trySend drops the message if the connection's buffer is full rather than
// blocking the hub loop.
func (c *Connection) trySend(data []byte) {
	select {
	case c.Send <- data:
	default:
	}
}

// Register adds a connection.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToRoom sends an event to every player in a room. The payload is
// marshaled before this returns, so callers may pass state they are holding
// a lock over.
func (h *Hub) BroadcastToRoom(roomID string, evtType EventType, payload interface{}) {
	h.enqueue(roomID, "", evtType, payload)
}

// SendToPlayer sends an event to one player in a room.
func (h *Hub) SendToPlayer(roomID, playerID string, evtType EventType, payload interface{}) {
	h.enqueue(roomID, playerID, evtType, payload)
}

func (h *Hub) enqueue(roomID, playerID string, evtType EventType, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		h.log.WithError(err).Error("ws payload marshal failed")
		return
	}
	data, err := json.Marshal(&Event{Type: evtType, Payload: raw})
	if err != nil {
		h.log.WithError(err).Error("ws event marshal failed")
		return
	}
	select {
	case h.outbound <- outboundEvent{roomID: roomID, playerID: playerID, data: data}:
	default:
		h.log.WithField("room", roomID).Warn("ws outbound buffer full, dropping event")
	}
}
