package model

import "time"

// Player represents a participant in a room
type Player struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	IsHost         bool         `json:"isHost"`
	Score          int          `json:"score"`
	Hand           []AnswerCard `json:"hand"`
	IsConnected    bool         `json:"isConnected"`
	DisconnectedAt *time.Time   `json:"disconnectedAt,omitempty"`
}

// HasCard reports whether the given answer card id is in the player's hand.
func (p *Player) HasCard(cardID string) bool {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return true
		}
	}
	return false
}
