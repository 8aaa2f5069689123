package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/keatonrproud/bad-cards/internal/game"
)

type Config struct {
	Port       string
	CORSOrigin string
	JWTSecret  string
	LogLevel   string

	CleanupInterval            time.Duration
	SinglePlayerTimeout        time.Duration
	DisconnectedPlayerTimeout  time.Duration
	FinishedGameTimeout        time.Duration
	InactiveWaitingRoomTimeout time.Duration
}

func Load() *Config {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		CleanupInterval:            getEnvDuration("CLEANUP_INTERVAL", 5*time.Minute),
		SinglePlayerTimeout:        getEnvDuration("SINGLE_PLAYER_TIMEOUT", 30*time.Minute),
		DisconnectedPlayerTimeout:  getEnvDuration("DISCONNECTED_PLAYER_TIMEOUT", 10*time.Minute),
		FinishedGameTimeout:        getEnvDuration("FINISHED_GAME_TIMEOUT", time.Hour),
		InactiveWaitingRoomTimeout: getEnvDuration("INACTIVE_WAITING_TIMEOUT", 2*time.Hour),
	}
}

// GameConfig maps the environment overrides onto the engine defaults.
func (c *Config) GameConfig() game.Config {
	gc := game.DefaultConfig()
	gc.CleanupInterval = c.CleanupInterval
	gc.SinglePlayerTimeout = c.SinglePlayerTimeout
	gc.DisconnectedPlayerTimeout = c.DisconnectedPlayerTimeout
	gc.FinishedGameTimeout = c.FinishedGameTimeout
	gc.InactiveWaitingTimeout = c.InactiveWaitingRoomTimeout
	return gc
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
