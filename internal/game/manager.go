// Package game owns all mutable room state and enforces the game rules.
// A single mutex guards the room map and every room mutation, so no two
// mutations of the same room can interleave; the round timers and the
// cleanup sweeper take the same lock before touching anything.
package game

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/keatonrproud/bad-cards/internal/deck"
	"github.com/keatonrproud/bad-cards/internal/model"
)

const maxNameLength = 20

// MutationFunc is invoked whenever server-driven time changes a room, so
// the transport layer can push updates without a client request. It runs
// while the manager lock is held and must not call back into the Manager.
type MutationFunc func(room *model.Room)

// Manager is the authoritative owner of all rooms.
type Manager struct {
	mu    sync.Mutex
	rooms map[string]*model.Room

	prompts *deck.Supply[model.PromptCard]
	answers *deck.Supply[model.AnswerCard]

	timers   map[string]*roundTimer
	spawners map[string]chan struct{}

	cfg           Config
	log           *logrus.Logger
	onRoomMutated MutationFunc

	sweeperStop chan struct{}
	shutdown    bool
}

// NewManager creates a manager with freshly shuffled card supplies and
// starts the periodic cleanup sweeper.
func NewManager(cfg Config, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.New()
	}
	m := &Manager{
		rooms:       make(map[string]*model.Room),
		prompts:     deck.NewSupply(deck.PromptCards),
		answers:     deck.NewSupply(deck.AnswerCards),
		timers:      make(map[string]*roundTimer),
		spawners:    make(map[string]chan struct{}),
		cfg:         cfg.withDefaults(),
		log:         log,
		sweeperStop: make(chan struct{}),
	}
	go m.runSweeper()
	return m
}

// OnRoomMutated registers the callback invoked by timer-driven mutations.
func (m *Manager) OnRoomMutated(fn MutationFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onRoomMutated = fn
}

func (m *Manager) notifyLocked(room *model.Room) {
	if m.onRoomMutated != nil {
		m.onRoomMutated(room)
	}
}

// CreateRoom allocates a new room with the caller as connected host.
// Zero or negative settings fall back to the defaults.
func (m *Manager) CreateRoom(roomName, hostName string, maxPlayers, maxScore, roundTimer int) (*model.Room, string, error) {
	roomName = strings.TrimSpace(roomName)
	if roomName == "" {
		return nil, "", ErrRoomNameEmpty
	}
	hostName, err := normalizeName(hostName)
	if err != nil {
		return nil, "", err
	}

	if maxPlayers <= 0 {
		maxPlayers = m.cfg.DefaultMaxPlayers
	}
	if maxScore <= 0 {
		maxScore = m.cfg.DefaultMaxScore
	}
	if roundTimer <= 0 {
		roundTimer = m.cfg.DefaultRoundTimer
	}

	host := &model.Player{
		ID:          uuid.NewString(),
		Name:        hostName,
		IsHost:      true,
		Hand:        []model.AnswerCard{},
		IsConnected: true,
	}
	room := &model.Room{
		ID:         uuid.NewString(),
		Name:       roomName,
		HostID:     host.ID,
		Players:    []*model.Player{host},
		MaxPlayers: maxPlayers,
		Status:     model.RoomWaiting,
		Rounds:     []*model.Round{},
		Settings: model.RoomSettings{
			MaxScore:   maxScore,
			RoundTimer: roundTimer,
			JudgeTimer: m.cfg.DefaultJudgeTimer,
		},
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.rooms[room.ID] = room
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"room": room.ID,
		"name": room.Name,
		"host": hostName,
	}).Info("room created")

	return room, host.ID, nil
}

// GetRoom looks up a room by id.
func (m *Manager) GetRoom(roomID string) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// WithRoom invokes fn with the room while holding the manager lock, so the
// caller can serialize room state without racing a timer tick. fn must not
// call back into the Manager.
func (m *Manager) WithRoom(roomID string, fn func(room *model.Room)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	fn(room)
	return nil
}

// ListRooms returns a snapshot of all rooms.
func (m *Manager) ListRooms() []*model.Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	rooms := make([]*model.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// ListRoomSummaries returns the public listing view of all rooms.
func (m *Manager) ListRoomSummaries() []model.RoomSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	summaries := make([]model.RoomSummary, 0, len(m.rooms))
	for _, room := range m.rooms {
		summaries = append(summaries, room.Summary())
	}
	return summaries
}

// deleteRoomLocked removes a room and releases its timer and minigame
// spawner. Callers must hold m.mu.
func (m *Manager) deleteRoomLocked(roomID string) {
	m.stopRoundTimerLocked(roomID)
	m.stopMiniSpawnerLocked(roomID)
	delete(m.rooms, roomID)
}

// GetStatistics derives aggregate counts across all rooms.
func (m *Manager) GetStatistics() model.Statistics {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stats model.Statistics
	stats.TotalRooms = len(m.rooms)
	for _, room := range m.rooms {
		switch room.Status {
		case model.RoomWaiting:
			stats.WaitingRooms++
		case model.RoomActive:
			stats.ActiveRooms++
		case model.RoomFinished:
			stats.FinishedRooms++
		}
		stats.TotalPlayers += len(room.Players)
		for _, p := range room.Players {
			if p.IsConnected {
				stats.ConnectedPlayers++
			} else {
				stats.DisconnectedPlayers++
			}
		}
	}
	return stats
}

// Shutdown stops the sweeper, every round timer, and every minigame
// spawner. Safe to call more than once.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shutdown {
		return
	}
	m.shutdown = true
	close(m.sweeperStop)
	for roomID := range m.timers {
		m.stopRoundTimerLocked(roomID)
	}
	for roomID := range m.spawners {
		m.stopMiniSpawnerLocked(roomID)
	}
	m.log.Info("game manager stopped")
}

// normalizeName trims a display name and enforces the length rule.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameInvalid
	}
	return name, nil
}
