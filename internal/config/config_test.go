package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset, shielding the test from whatever the
	// invoking shell exported.
	for _, key := range []string{
		"PORT", "CORS_ORIGIN", "JWT_SECRET", "LOG_LEVEL",
		"CLEANUP_INTERVAL", "SINGLE_PLAYER_TIMEOUT",
		"DISCONNECTED_PLAYER_TIMEOUT", "FINISHED_GAME_TIMEOUT",
		"INACTIVE_WAITING_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
	assert.Equal(t, 30*time.Minute, cfg.SinglePlayerTimeout)
	assert.Equal(t, 10*time.Minute, cfg.DisconnectedPlayerTimeout)
	assert.Equal(t, time.Hour, cfg.FinishedGameTimeout)
	assert.Equal(t, 2*time.Hour, cfg.InactiveWaitingRoomTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CLEANUP_INTERVAL", "90s")
	// Bare numbers are read as seconds.
	t.Setenv("FINISHED_GAME_TIMEOUT", "120")
	t.Setenv("SINGLE_PLAYER_TIMEOUT", "garbage")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.CleanupInterval)
	assert.Equal(t, 2*time.Minute, cfg.FinishedGameTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SinglePlayerTimeout)
}

func TestGameConfigMapping(t *testing.T) {
	t.Setenv("CLEANUP_INTERVAL", "45s")

	gc := Load().GameConfig()
	assert.Equal(t, 45*time.Second, gc.CleanupInterval)
	assert.Equal(t, 7, gc.HandSize)
	assert.Equal(t, 3, gc.MinPlayers)
	assert.Equal(t, 8, gc.DefaultMaxPlayers)
}
