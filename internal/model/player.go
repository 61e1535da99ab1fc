package model

import "time"

// PlayerID uniquely identifies a player across the system.
// IDs are allocated from a monotonic counter starting at 0 and
// are never reused within a process lifetime.
type PlayerID int64

// Player represents a registered participant. Players are created once
// and live for the process lifetime; they are never deleted.
type Player struct {
	ID        PlayerID
	Name      string
	CreatedAt time.Time
}
