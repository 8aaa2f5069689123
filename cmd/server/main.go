package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/config"
	"github.com/keatonrproud/bad-cards/internal/game"
	"github.com/keatonrproud/bad-cards/internal/model"
	"github.com/keatonrproud/bad-cards/internal/service"
	"github.com/keatonrproud/bad-cards/internal/transport/rest"
	"github.com/keatonrproud/bad-cards/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Game engine with round timers, cleanup sweeper and minigame spawners.
	manager := game.NewManager(cfg.GameConfig(), log)

	hub := ws.NewHub(log)
	log.Info("websocket hub started")

	// Every engine mutation fans out a room snapshot to the room's
	// connections. The callback runs under the manager lock, so it only
	// enqueues and never calls back into the manager.
	manager.OnRoomMutated(func(room *model.Room) {
		hub.BroadcastToRoom(room.ID, ws.EvtRoomUpdate, map[string]interface{}{"room": room})
	})

	authSvc := service.NewAuthService(cfg.JWTSecret)

	router := rest.NewRouter(&rest.Container{
		Manager:     manager,
		AuthService: authSvc,
		WSHub:       hub,
		CORSOrigin:  cfg.CORSOrigin,
		Log:         log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen and serve")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	manager.Shutdown()
	log.Info("server exited")
}
