package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/game"
	"github.com/keatonrproud/bad-cards/internal/model"
	"github.com/keatonrproud/bad-cards/internal/service"
)

// RoomHandler serves the room lifecycle endpoints. Responses that include a
// full room are marshaled while the manager lock is held so timer ticks
// cannot mutate the room mid-encode.
type RoomHandler struct {
	manager *game.Manager
	authSvc *service.AuthService
	log     *logrus.Logger
}

func NewRoomHandler(manager *game.Manager, authSvc *service.AuthService, log *logrus.Logger) *RoomHandler {
	return &RoomHandler{manager: manager, authSvc: authSvc, log: log}
}

type createRoomRequest struct {
	Name       string `json:"name"`
	PlayerName string `json:"playerName"`
	MaxPlayers int    `json:"maxPlayers"`
	MaxScore   int    `json:"maxScore"`
	RoundTimer int    `json:"roundTimer"`
}

type joinRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// Create handles POST /api/game/rooms.
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, hostID, err := h.manager.CreateRoom(req.Name, req.PlayerName, req.MaxPlayers, req.MaxScore, req.RoundTimer)
	if err != nil {
		writeGameError(w, err)
		return
	}

	token, err := h.authSvc.GeneratePlayerToken(room.ID, hostID)
	if err != nil {
		h.log.WithError(err).Error("failed to sign player token")
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	h.log.WithFields(logrus.Fields{"room_id": room.ID, "host_id": hostID}).Info("room created")
	h.respondWithRoom(w, http.StatusCreated, room.ID, hostID, token)
}

// Join handles POST /api/game/rooms/{id}/join. Joining with the name of a
// disconnected player reconnects as that player instead of adding a seat.
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, playerID, err := h.manager.JoinRoom(roomID, req.PlayerName)
	if err != nil {
		writeGameError(w, err)
		return
	}

	token, err := h.authSvc.GeneratePlayerToken(room.ID, playerID)
	if err != nil {
		h.log.WithError(err).Error("failed to sign player token")
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	h.respondWithRoom(w, http.StatusOK, room.ID, playerID, token)
}

// List handles GET /api/game/rooms and returns public summaries only.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rooms": h.manager.ListRoomSummaries(),
	})
}

// Get handles GET /api/game/rooms/{id}.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	var data []byte
	err := h.manager.WithRoom(roomID, func(room *model.Room) {
		data, _ = json.Marshal(map[string]interface{}{"room": room})
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeRawJSON(w, http.StatusOK, data)
}

func (h *RoomHandler) respondWithRoom(w http.ResponseWriter, status int, roomID, playerID, token string) {
	var data []byte
	err := h.manager.WithRoom(roomID, func(room *model.Room) {
		data, _ = json.Marshal(map[string]interface{}{
			"room":     room,
			"playerId": playerID,
			"token":    token,
		})
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeRawJSON(w, status, data)
}
