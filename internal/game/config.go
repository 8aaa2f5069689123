package game

import "time"

// Config tunes the manager's fixed rules and background intervals. Zero
// values are replaced by the defaults below in NewManager.
type Config struct {
	HandSize   int
	MinPlayers int

	DefaultMaxPlayers int
	DefaultMaxScore   int
	DefaultRoundTimer int // seconds
	DefaultJudgeTimer int // seconds

	// Round timer tick interval. Remaining time is recomputed from the
	// phase deadline on every tick, not decremented.
	TickInterval time.Duration

	// Cleanup sweeper policies.
	CleanupInterval           time.Duration
	SinglePlayerTimeout       time.Duration
	DisconnectedPlayerTimeout time.Duration
	FinishedGameTimeout       time.Duration
	InactiveWaitingTimeout    time.Duration

	// Waiting-room minigame.
	MiniWidth           float64
	MiniHeight          float64
	MiniActiveCap       int
	MiniSpawnInterval   time.Duration
	MiniCollisionRadius float64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		HandSize:   7,
		MinPlayers: 3,

		DefaultMaxPlayers: 8,
		DefaultMaxScore:   7,
		DefaultRoundTimer: 45,
		DefaultJudgeTimer: 60,

		TickInterval: time.Second,

		CleanupInterval:           5 * time.Minute,
		SinglePlayerTimeout:       30 * time.Minute,
		DisconnectedPlayerTimeout: 10 * time.Minute,
		FinishedGameTimeout:       time.Hour,
		InactiveWaitingTimeout:    2 * time.Hour,

		MiniWidth:           720,
		MiniHeight:          420,
		MiniActiveCap:       18,
		MiniSpawnInterval:   600 * time.Millisecond,
		MiniCollisionRadius: 24,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HandSize <= 0 {
		c.HandSize = d.HandSize
	}
	if c.MinPlayers <= 0 {
		c.MinPlayers = d.MinPlayers
	}
	if c.DefaultMaxPlayers <= 0 {
		c.DefaultMaxPlayers = d.DefaultMaxPlayers
	}
	if c.DefaultMaxScore <= 0 {
		c.DefaultMaxScore = d.DefaultMaxScore
	}
	if c.DefaultRoundTimer <= 0 {
		c.DefaultRoundTimer = d.DefaultRoundTimer
	}
	if c.DefaultJudgeTimer <= 0 {
		c.DefaultJudgeTimer = d.DefaultJudgeTimer
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = d.CleanupInterval
	}
	if c.SinglePlayerTimeout <= 0 {
		c.SinglePlayerTimeout = d.SinglePlayerTimeout
	}
	if c.DisconnectedPlayerTimeout <= 0 {
		c.DisconnectedPlayerTimeout = d.DisconnectedPlayerTimeout
	}
	if c.FinishedGameTimeout <= 0 {
		c.FinishedGameTimeout = d.FinishedGameTimeout
	}
	if c.InactiveWaitingTimeout <= 0 {
		c.InactiveWaitingTimeout = d.InactiveWaitingTimeout
	}
	if c.MiniWidth <= 0 {
		c.MiniWidth = d.MiniWidth
	}
	if c.MiniHeight <= 0 {
		c.MiniHeight = d.MiniHeight
	}
	if c.MiniActiveCap <= 0 {
		c.MiniActiveCap = d.MiniActiveCap
	}
	if c.MiniSpawnInterval <= 0 {
		c.MiniSpawnInterval = d.MiniSpawnInterval
	}
	if c.MiniCollisionRadius <= 0 {
		c.MiniCollisionRadius = d.MiniCollisionRadius
	}
	return c
}
