package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/game"
)

// AdminHandler exposes operational endpoints.
type AdminHandler struct {
	manager *game.Manager
	log     *logrus.Logger
}

func NewAdminHandler(manager *game.Manager, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{manager: manager, log: log}
}

// Health handles GET /api/health.
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"statistics": h.manager.GetStatistics(),
	})
}

// Cleanup handles POST /api/admin/cleanup. It runs one synchronous sweep
// without waiting for the background interval.
func (h *AdminHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	h.manager.ManualCleanup()
	h.log.Info("manual cleanup completed")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "cleanup completed",
		"statistics": h.manager.GetStatistics(),
	})
}
