package handler

import (
	"encoding/json"
	"net/http"

	"github.com/keatonrproud/bad-cards/internal/game"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeGameError maps the game failure taxonomy onto HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch game.KindOf(err) {
	case game.KindNotFound:
		status = http.StatusNotFound
	case game.KindForbidden:
		status = http.StatusForbidden
	case game.KindInvalidState:
		status = http.StatusConflict
	case game.KindValidation, game.KindInvalidSelection:
		status = http.StatusBadRequest
	}
	writeError(w, status, err.Error())
}
