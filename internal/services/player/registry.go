package player

import (
	"context"
	"errors"
	"log/slog"

	"github.com/halfgrim/roshambo/internal/dependencies/clock"
	"github.com/halfgrim/roshambo/internal/model"
	"github.com/halfgrim/roshambo/internal/storage"
)

// Registry owns the set of registered players and enforces display-name
// uniqueness. Players are never removed.
type Registry struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewRegistry creates a new Registry
func NewRegistry(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Registry {
	return &Registry{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Register creates a new player with the given display name. The name
// must not match any existing player's name (case-sensitive).
func (r *Registry) Register(ctx context.Context, name string) (*model.Player, error) {
	_, err := r.storage.GetPlayerByName(ctx, name)
	if err == nil {
		return nil, model.ErrNameTaken
	}
	if !errors.Is(err, model.ErrUnknownPlayer) {
		return nil, err
	}

	id, err := r.storage.NextPlayerID(ctx)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:        id,
		Name:      name,
		CreatedAt: r.clock.Now(),
	}

	if err := r.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	r.logger.Info("player registered",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// Get retrieves a player by ID
func (r *Registry) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return r.storage.GetPlayer(ctx, id)
}

// Exists reports whether a player with the given ID is registered.
// Used by the room and game layers to validate actor identity.
func (r *Registry) Exists(ctx context.Context, id model.PlayerID) (bool, error) {
	_, err := r.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUnknownPlayer) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
