package model

import "github.com/golang-jwt/jwt/v5"

// PlayerClaims is the room-scoped identity token payload. A player's token
// is only valid for the room it was issued for.
type PlayerClaims struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	jwt.RegisteredClaims
}
