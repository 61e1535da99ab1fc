package session

import (
	"context"
	"sync"

	"github.com/halfgrim/roshambo/internal/model"
	"github.com/halfgrim/roshambo/internal/services/game"
	"github.com/halfgrim/roshambo/internal/services/player"
	"github.com/halfgrim/roshambo/internal/services/room"
)

// Store is the aggregate owner of the player/room/game collections. It
// exposes the full operation surface behind a single mutex, so at most
// one logical operation runs against the aggregate at any instant and
// callers never observe partial mutation.
//
// Every operation is a fast total-or-nothing step: checks precede
// mutation, and nothing blocks while the lock is held beyond the
// storage calls themselves. Returned rooms and games are deep copies;
// internal state is never handed out by reference.
type Store struct {
	mu sync.Mutex

	players *player.Registry
	rooms   *room.Manager
	games   *game.Engine
}

// NewStore creates a session store over the three managers.
func NewStore(players *player.Registry, rooms *room.Manager, games *game.Engine) *Store {
	return &Store{
		players: players,
		rooms:   rooms,
		games:   games,
	}
}

// RegisterPlayer creates a new player with a unique display name.
func (s *Store) RegisterPlayer(ctx context.Context, name string) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.players.Register(ctx, name)
	if err != nil {
		return nil, err
	}
	copied := *p
	return &copied, nil
}

// ListRooms returns a snapshot of all open rooms.
func (s *Store) ListRooms(ctx context.Context) ([]*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Room, len(rooms))
	for i, r := range rooms {
		out[i] = r.Clone()
	}
	return out, nil
}

// CreateRoom opens a room hosted by the given player.
func (s *Store) CreateRoom(ctx context.Context, playerID model.PlayerID, name string, settings *model.GameSettings) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.rooms.Create(ctx, playerID, name, settings)
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// JoinRoom adds the player to the room.
func (s *Store) JoinRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.rooms.Join(ctx, playerID, roomID)
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// LeaveRoom removes the player from the room, deleting it if emptied.
func (s *Store) LeaveRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rooms.Leave(ctx, playerID, roomID)
}

// GetRoom retrieves a room the player belongs to.
func (s *Store) GetRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.rooms.Get(ctx, playerID, roomID)
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// LaunchRoom converts a full room into a running game, consuming the room.
func (s *Store) LaunchRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.rooms.Launch(ctx, playerID, roomID)
	if err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// GetGame retrieves a game the player participates in.
func (s *Store) GetGame(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.games.Get(ctx, playerID, gameID)
	if err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// PlayRound submits the player's action for the game's current round,
// resolving the round if every player has now acted.
func (s *Store) PlayRound(ctx context.Context, playerID model.PlayerID, gameID model.GameID, action model.Action) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.games.PlayRound(ctx, playerID, gameID, action)
	if err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// Interface for dependency injection
type StoreInterface interface {
	RegisterPlayer(ctx context.Context, name string) (*model.Player, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)
	CreateRoom(ctx context.Context, playerID model.PlayerID, name string, settings *model.GameSettings) (*model.Room, error)
	JoinRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Room, error)
	LeaveRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) error
	GetRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Room, error)
	LaunchRoom(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Game, error)
	GetGame(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Game, error)
	PlayRound(ctx context.Context, playerID model.PlayerID, gameID model.GameID, action model.Action) (*model.Game, error)
}

var _ StoreInterface = (*Store)(nil)
