package model

// MiniItemType is the kind of collectible shown in the waiting-room minigame.
type MiniItemType string

const (
	MiniStar  MiniItemType = "star"
	MiniHeart MiniItemType = "heart"
	MiniZap   MiniItemType = "zap"
)

// MiniItem is a collectible on the waiting-room field. Collected items are
// removed immediately, so only uncollected ones are ever serialized.
type MiniItem struct {
	ID   string       `json:"id"`
	X    float64      `json:"x"`
	Y    float64      `json:"y"`
	Type MiniItemType `json:"type"`
}

// MiniCursor is one player's position and score inside the minigame.
type MiniCursor struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score int     `json:"score"`
}

// WaitingMini is the state of the minigame played while a room is in the
// waiting status.
type WaitingMini struct {
	Width   float64                `json:"width"`
	Height  float64                `json:"height"`
	Items   []MiniItem             `json:"items"`
	Players map[string]*MiniCursor `json:"players"`
}
