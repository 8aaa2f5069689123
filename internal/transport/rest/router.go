package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/game"
	"github.com/keatonrproud/bad-cards/internal/service"
	"github.com/keatonrproud/bad-cards/internal/transport/rest/handler"
	"github.com/keatonrproud/bad-cards/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Manager     *game.Manager
	AuthService *service.AuthService
	WSHub       *ws.Hub
	CORSOrigin  string
	Log         *logrus.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(c.Manager, c.AuthService, c.Log)
	adminHandler := handler.NewAdminHandler(c.Manager, c.Log)
	wsHandler := ws.NewHandler(c.WSHub, c.Manager, c.AuthService, c.Log)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSOrigin))

	api := r.PathPrefix("/api").Subrouter()

	// Room lifecycle routes
	api.HandleFunc("/game/rooms", roomHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/game/rooms", roomHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/game/rooms/{id}", roomHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/game/rooms/{id}/join", roomHandler.Join).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	r.HandleFunc("/ws", wsHandler.ServeWS).Methods("GET")

	// Operational routes
	api.HandleFunc("/health", adminHandler.Health).Methods("GET")
	api.HandleFunc("/admin/cleanup", adminHandler.Cleanup).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(origin string) mux.MiddlewareFunc {
	if origin == "" {
		origin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
