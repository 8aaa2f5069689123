package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/game"
	"github.com/keatonrproud/bad-cards/internal/model"
	"github.com/keatonrproud/bad-cards/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades authenticated players to WebSocket connections and
// dispatches their game events to the manager.
type Handler struct {
	hub     *Hub
	manager *game.Manager
	authSvc *service.AuthService
	log     *logrus.Logger
}

// NewHandler creates a WebSocket handler.
func NewHandler(hub *Hub, manager *game.Manager, authSvc *service.AuthService, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{hub: hub, manager: manager, authSvc: authSvc, log: log}
}

// ServeWS handles GET /ws?token=... The token is the room-scoped identity
// issued by the create/join endpoints; connecting marks the player
// connected, closing marks them disconnected. Neither ever removes them.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	claims, err := h.authSvc.ValidatePlayerToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := h.manager.SetPlayerConnection(claims.RoomID, claims.PlayerID, true); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("websocket upgrade failed")
		return
	}

	conn := &Connection{
		RoomID:   claims.RoomID,
		PlayerID: claims.PlayerID,
		Send:     make(chan []byte, 256),
	}
	h.hub.Register(conn)
	h.broadcastRoom(conn.RoomID, EvtRoomUpdate)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
		h.handleDisconnect(conn)
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.WithError(err).Debug("websocket read error")
			}
			return
		}
		var evt Event
		if err := json.Unmarshal(data, &evt); err != nil {
			h.sendError(conn, "malformed event")
			continue
		}
		h.dispatch(conn, &evt)
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wsConn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleDisconnect marks the player disconnected so the sweeper can evict
// them later if they never come back. The player may already be gone
// (explicit leave, room evicted); that is not an error worth surfacing.
func (h *Handler) handleDisconnect(conn *Connection) {
	if _, err := h.manager.SetPlayerConnection(conn.RoomID, conn.PlayerID, false); err != nil {
		h.log.WithFields(logrus.Fields{
			"room":   conn.RoomID,
			"player": conn.PlayerID,
		}).WithError(err).Debug("disconnect for absent player")
		return
	}
	h.broadcastRoom(conn.RoomID, EvtRoomUpdate)
}

type playCardsPayload struct {
	Cards []model.AnswerCard `json:"cards"`
}

type judgePlayPayload struct {
	PlayID string `json:"playId"`
}

type miniMovePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h *Handler) dispatch(conn *Connection, evt *Event) {
	switch evt.Type {
	case EvtStartGame:
		if _, err := h.manager.StartGame(conn.RoomID, conn.PlayerID); err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.broadcastRoom(conn.RoomID, EvtGameStarted, EvtRoundStarted)

	case EvtResetGame:
		if _, err := h.manager.ResetGame(conn.RoomID, conn.PlayerID); err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.broadcastRoom(conn.RoomID, EvtGameReset, EvtRoomUpdate)

	case EvtPlayCards:
		var p playCardsPayload
		if err := json.Unmarshal(evt.Payload, &p); err != nil {
			h.sendError(conn, "malformed play-cards payload")
			return
		}
		cardIDs := make([]string, len(p.Cards))
		for i, c := range p.Cards {
			cardIDs[i] = c.ID
		}
		if _, err := h.manager.PlayCards(conn.RoomID, conn.PlayerID, cardIDs); err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.broadcastRoom(conn.RoomID, EvtCardsPlayed, EvtRoomUpdate)

	case EvtJudgePlay:
		var p judgePlayPayload
		if err := json.Unmarshal(evt.Payload, &p); err != nil {
			h.sendError(conn, "malformed judge-play payload")
			return
		}
		_, winner, err := h.manager.JudgePlay(conn.RoomID, conn.PlayerID, p.PlayID)
		if err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.manager.WithRoom(conn.RoomID, func(room *model.Room) {
			h.hub.BroadcastToRoom(conn.RoomID, EvtRoundComplete, map[string]interface{}{
				"room":   room,
				"winner": winner,
			})
			h.hub.BroadcastToRoom(conn.RoomID, EvtRoomUpdate, map[string]interface{}{"room": room})
		})

	case EvtNextRound:
		if _, err := h.manager.NextRound(conn.RoomID, conn.PlayerID); err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.broadcastRoom(conn.RoomID, EvtRoundStarted, EvtRoomUpdate)

	case EvtLeaveRoom:
		room, err := h.manager.LeaveRoom(conn.RoomID, conn.PlayerID)
		if err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.send(conn, EvtPlayerLeft, map[string]string{"roomId": conn.RoomID})
		if room != nil {
			h.broadcastRoom(conn.RoomID, EvtRoomUpdate)
		}

	case EvtMiniJoin:
		if _, err := h.manager.MiniJoin(conn.RoomID, conn.PlayerID); err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.broadcastMiniState(conn.RoomID)

	case EvtMiniMove:
		var p miniMovePayload
		if err := json.Unmarshal(evt.Payload, &p); err != nil {
			h.sendError(conn, "malformed mini-move payload")
			return
		}
		if _, err := h.manager.MiniMove(conn.RoomID, conn.PlayerID, p.X, p.Y); err != nil {
			h.sendError(conn, err.Error())
			return
		}
		h.broadcastMiniState(conn.RoomID)

	default:
		h.sendError(conn, "unknown event type")
	}
}

// broadcastRoom emits the given events, each carrying the room, to every
// player in the room. Marshaling happens under the manager lock so a timer
// tick cannot race the snapshot.
func (h *Handler) broadcastRoom(roomID string, types ...EventType) {
	h.manager.WithRoom(roomID, func(room *model.Room) {
		for _, t := range types {
			h.hub.BroadcastToRoom(roomID, t, map[string]interface{}{"room": room})
		}
	})
}

func (h *Handler) broadcastMiniState(roomID string) {
	h.manager.WithRoom(roomID, func(room *model.Room) {
		h.hub.BroadcastToRoom(roomID, EvtMiniState, map[string]interface{}{
			"roomId": roomID,
			"state":  room.WaitingMini,
		})
	})
}

// sendError reports a failed action to the originating player only; other
// room members are not told about someone else's rejected move.
func (h *Handler) sendError(conn *Connection, msg string) {
	h.send(conn, EvtError, map[string]string{"message": msg})
}

func (h *Handler) send(conn *Connection, evtType EventType, payload interface{}) {
	h.hub.SendToPlayer(conn.RoomID, conn.PlayerID, evtType, payload)
}
