package room

import (
	"context"
	"log/slog"

	"github.com/halfgrim/roshambo/internal/dependencies/clock"
	"github.com/halfgrim/roshambo/internal/model"
	"github.com/halfgrim/roshambo/internal/services/game"
	"github.com/halfgrim/roshambo/internal/storage"
)

// Manager owns the set of open rooms: membership and capacity rules,
// and the transition of a full room into a running game.
type Manager struct {
	storage storage.Storage
	engine  *game.Engine
	clock   clock.Clock
	logger  *slog.Logger
}

// NewManager creates a new room Manager
func NewManager(storage storage.Storage, engine *game.Engine, clock clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		storage: storage,
		engine:  engine,
		clock:   clock,
		logger:  logger,
	}
}

// Create opens a new room with the given player as host. Nil settings
// select the defaults (two-player rock-paper-scissors, first to 3).
func (m *Manager) Create(ctx context.Context, hostID model.PlayerID, name string, settings *model.GameSettings) (*model.Room, error) {
	host, err := m.storage.GetPlayer(ctx, hostID)
	if err != nil {
		return nil, err
	}

	roomSettings := model.DefaultGameSettings()
	if settings != nil {
		roomSettings = *settings
	}
	if err := roomSettings.Validate(); err != nil {
		return nil, err
	}

	id, err := m.storage.NextRoomID(ctx)
	if err != nil {
		return nil, err
	}

	now := m.clock.Now()
	room := &model.Room{
		ID:        id,
		Name:      name,
		Settings:  roomSettings,
		Players:   []model.Player{*host},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	m.logger.Info("room created",
		slog.Int64("room_id", int64(room.ID)),
		slog.Int64("host_id", int64(hostID)),
		slog.String("name", room.Name),
		slog.Int("player_count", room.Settings.PlayerCount),
	)

	return room, nil
}

// Join appends the player to the room's member sequence, preserving
// join order.
func (m *Manager) Join(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Room, error) {
	player, err := m.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	room, err := m.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.HasPlayer(playerID) {
		return nil, model.ErrAlreadyInRoom
	}
	if room.IsFull() {
		return nil, model.ErrRoomFull
	}

	room.Players = append(room.Players, *player)
	room.UpdatedAt = m.clock.Now()

	if err := m.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// Leave removes the player from the room. The emptied room is deleted;
// otherwise, if the host left, the next-joined player is host simply by
// being first in the sequence.
func (m *Manager) Leave(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) error {
	if _, err := m.storage.GetPlayer(ctx, playerID); err != nil {
		return err
	}

	room, err := m.storage.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}

	if !room.HasPlayer(playerID) {
		return model.ErrNotInRoom
	}

	for i, p := range room.Players {
		if p.ID == playerID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}

	if len(room.Players) == 0 {
		m.logger.Info("room emptied and deleted", slog.Int64("room_id", int64(room.ID)))
		return m.storage.DeleteRoom(ctx, roomID)
	}

	room.UpdatedAt = m.clock.Now()
	return m.storage.SaveRoom(ctx, room)
}

// Get retrieves a room on behalf of one of its members; non-members
// only see rooms through List.
func (m *Manager) Get(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Room, error) {
	if _, err := m.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	room, err := m.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !room.HasPlayer(playerID) {
		return nil, model.ErrNotInRoom
	}

	return room, nil
}

// List returns all open rooms for the public lobby listing.
func (m *Manager) List(ctx context.Context) ([]*model.Room, error) {
	return m.storage.ListRooms(ctx)
}

// Launch converts a full room into a running game. Only the host may
// launch, and only at exact capacity. The room is consumed: a second
// launch fails with ErrUnknownRoom because the room no longer exists.
func (m *Manager) Launch(ctx context.Context, playerID model.PlayerID, roomID model.RoomID) (*model.Game, error) {
	if _, err := m.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	room, err := m.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !room.HasPlayer(playerID) {
		return nil, model.ErrNotInRoom
	}
	if room.HostID() != playerID {
		return nil, model.ErrNotHost
	}
	if len(room.Players) != room.Settings.PlayerCount {
		return nil, model.ErrRoomNotFull
	}

	gameData, err := m.engine.CreateFromRoom(ctx, room)
	if err != nil {
		return nil, err
	}

	if err := m.storage.DeleteRoom(ctx, roomID); err != nil {
		return nil, err
	}

	m.logger.Info("room launched",
		slog.Int64("room_id", int64(roomID)),
		slog.Int64("game_id", int64(gameData.ID)),
	)

	return gameData, nil
}
