package model

import "errors"

// Common errors used across the application. All are validation-style
// caller/state mismatches; none are retryable.
var (
	// Player errors
	ErrUnknownPlayer = errors.New("unknown player id")
	ErrNameTaken     = errors.New("this name is already taken")

	// Room errors
	ErrUnknownRoom     = errors.New("unknown room id")
	ErrAlreadyInRoom   = errors.New("player already in the room")
	ErrRoomFull        = errors.New("room full")
	ErrNotInRoom       = errors.New("player not in the room")
	ErrNotHost         = errors.New("player is not the host")
	ErrRoomNotFull     = errors.New("room must be full to launch the game")
	ErrInvalidSettings = errors.New("invalid game settings")

	// Game errors
	ErrUnknownGame = errors.New("unknown game id")
	ErrNotInGame   = errors.New("player not in the game")
	ErrGameEnded   = errors.New("game is not running anymore")
)
