package model

import "time"

// RoomStatus is the lifecycle state of a room.
type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomActive   RoomStatus = "active"
	RoomFinished RoomStatus = "finished"
)

// RoomSettings are the host-chosen game parameters. Timer values are in
// seconds.
type RoomSettings struct {
	MaxScore   int `json:"maxScore"`
	RoundTimer int `json:"roundTimer"`
	JudgeTimer int `json:"judgeTimer"`
}

// Room is one isolated game instance. Player order matters: the first
// remaining member in join order becomes host when the host leaves.
type Room struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	HostID       string       `json:"hostId"`
	Players      []*Player    `json:"players"`
	MaxPlayers   int          `json:"maxPlayers"`
	Status       RoomStatus   `json:"status"`
	CurrentRound *Round       `json:"currentRound,omitempty"`
	Rounds       []*Round     `json:"rounds"`
	Settings     RoomSettings `json:"settings"`
	CreatedAt    time.Time    `json:"createdAt"`
	WaitingMini  *WaitingMini `json:"waitingMini,omitempty"`
}

// FindPlayer returns the player with the given id, or nil.
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ConnectedCount returns the number of currently connected players.
func (r *Room) ConnectedCount() int {
	n := 0
	for _, p := range r.Players {
		if p.IsConnected {
			n++
		}
	}
	return n
}

// RoomSummary is the public listing view of a room.
type RoomSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PlayerCount int        `json:"playerCount"`
	MaxPlayers  int        `json:"maxPlayers"`
	Status      RoomStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Summary returns the public listing view of the room.
func (r *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:          r.ID,
		Name:        r.Name,
		PlayerCount: len(r.Players),
		MaxPlayers:  r.MaxPlayers,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
