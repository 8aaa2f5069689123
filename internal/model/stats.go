package model

// Statistics are aggregate counts across all rooms, derived read-only.
type Statistics struct {
	TotalRooms          int `json:"totalRooms"`
	WaitingRooms        int `json:"waitingRooms"`
	ActiveRooms         int `json:"activeRooms"`
	FinishedRooms       int `json:"finishedRooms"`
	TotalPlayers        int `json:"totalPlayers"`
	ConnectedPlayers    int `json:"connectedPlayers"`
	DisconnectedPlayers int `json:"disconnectedPlayers"`
}
