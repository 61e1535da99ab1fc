package redis

import (
	"fmt"

	"github.com/halfgrim/roshambo/internal/model"
)

// Key prefix for all lobby-related data
const keyPrefix = "roshambo"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playerNameIndexKey returns the Redis key for the name -> player_id index
func playerNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:player_name:%s", keyPrefix, name)
}

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%d", keyPrefix, id)
}

// roomsIndexKey returns the Redis key for the SET of open room IDs
func roomsIndexKey() string {
	return fmt.Sprintf("%s:idx:rooms", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%d", keyPrefix, id)
}

// Counter keys for the three independent ID namespaces

func playerCounterKey() string {
	return fmt.Sprintf("%s:ctr:player", keyPrefix)
}

func roomCounterKey() string {
	return fmt.Sprintf("%s:ctr:room", keyPrefix)
}

func gameCounterKey() string {
	return fmt.Sprintf("%s:ctr:game", keyPrefix)
}
