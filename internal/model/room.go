package model

import "time"

// RoomID uniquely identifies an open room. Like player IDs, room IDs
// come from their own monotonic counter and are never reused.
type RoomID int64

// Room is a pending, not-yet-started match grouping players before
// capacity is reached. Player order is join order; the host is defined
// as Players[0], so host succession on leave is implicit.
type Room struct {
	ID       RoomID
	Name     string
	Settings GameSettings
	Players  []Player

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HostID returns the ID of the room's host (the earliest-joined,
// never-left member).
func (r *Room) HostID() PlayerID {
	return r.Players[0].ID
}

// HasPlayer reports whether the given player is a member of the room.
func (r *Room) HasPlayer(id PlayerID) bool {
	for _, p := range r.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsFull reports whether the room has reached its configured capacity.
func (r *Room) IsFull() bool {
	return len(r.Players) >= r.Settings.PlayerCount
}
