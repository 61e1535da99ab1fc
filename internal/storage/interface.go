package storage

import (
	"context"

	"github.com/halfgrim/roshambo/internal/model"
)

// Storage defines the interface for data persistence.
//
// It also owns identifier allocation: player, room, and game IDs come
// from three independent monotonic counters starting at 0, and are
// never reused for the lifetime of the store.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error
	// ListRooms returns all open rooms ordered by ascending room ID.
	ListRooms(ctx context.Context) ([]*model.Room, error)

	// Game operations. Games are never deleted; ended games stay
	// queryable for the lifetime of the store.
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)

	// Identifier allocation
	NextPlayerID(ctx context.Context) (model.PlayerID, error)
	NextRoomID(ctx context.Context) (model.RoomID, error)
	NextGameID(ctx context.Context) (model.GameID, error)
}
