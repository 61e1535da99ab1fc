package request

// RegisterPlayerRequest is the request body for registering a player
type RegisterPlayerRequest struct {
	Name string `json:"name"`
}

// EndCondition is the wire form of a game end condition
type EndCondition struct {
	Kind   string `json:"kind"`
	Target int    `json:"target"`
}

// GameSettings is the wire form of room game settings
type GameSettings struct {
	Kind         string       `json:"kind"`
	PlayerCount  int          `json:"player_count"`
	EndCondition EndCondition `json:"end_condition"`
}

// CreateRoomRequest is the request body for creating a room.
// Settings may be omitted to use the server defaults.
type CreateRoomRequest struct {
	PlayerID int64         `json:"player_id"`
	RoomName string        `json:"room_name"`
	Settings *GameSettings `json:"settings,omitempty"`
}

// RoomActionRequest is the request body for join/leave/launch operations
type RoomActionRequest struct {
	PlayerID int64 `json:"player_id"`
}

// PlayRoundRequest is the request body for submitting a round action
type PlayRoundRequest struct {
	PlayerID int64  `json:"player_id"`
	Action   string `json:"action"`
}
