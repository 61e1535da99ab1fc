package game

import (
	"context"
	"log/slog"

	"github.com/halfgrim/roshambo/internal/dependencies/clock"
	"github.com/halfgrim/roshambo/internal/model"
	"github.com/halfgrim/roshambo/internal/storage"
)

// Engine owns the set of active and ended games. It collects per-round
// actions, resolves a round by all-pairs comparison once every player
// has submitted, and evaluates the end condition.
type Engine struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewEngine creates a new game Engine
func NewEngine(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreateFromRoom builds a running game from a full room's snapshot:
// players in room order with zero scores, an empty collecting round,
// and no history.
func (e *Engine) CreateFromRoom(ctx context.Context, room *model.Room) (*model.Game, error) {
	id, err := e.storage.NextGameID(ctx)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	players := make([]model.ScoredPlayer, len(room.Players))
	for i, p := range room.Players {
		players[i] = model.ScoredPlayer{Player: p, Score: 0}
	}

	game := &model.Game{
		ID:           id,
		Settings:     room.Settings,
		Players:      players,
		CurrentRound: model.NewRound(),
		RoundHistory: []model.RoundData{},
		Status:       model.GameStatusRunning,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := e.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	e.logger.Info("game created",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("room_id", int64(room.ID)),
		slog.Int("player_count", len(players)),
	)

	return game, nil
}

// Get retrieves a game on behalf of one of its participants.
func (e *Engine) Get(ctx context.Context, playerID model.PlayerID, gameID model.GameID) (*model.Game, error) {
	if _, err := e.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	game, err := e.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(playerID) {
		return nil, model.ErrNotInGame
	}

	return game, nil
}

// PlayRound records the player's action for the current round,
// overwriting any prior submission. If every participant has now acted,
// the round resolves synchronously within this call; otherwise the game
// is returned unchanged except for the recorded input.
func (e *Engine) PlayRound(ctx context.Context, playerID model.PlayerID, gameID model.GameID, action model.Action) (*model.Game, error) {
	if _, err := e.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	game, err := e.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(playerID) {
		return nil, model.ErrNotInGame
	}

	if game.Status != model.GameStatusRunning {
		return nil, model.ErrGameEnded
	}

	game.CurrentRound.Inputs[playerID] = action
	game.UpdatedAt = e.clock.Now()

	if game.AllPlayersActed() {
		e.resolveRound(game)
	}

	if err := e.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// resolveRound runs the all-pairs comparison for the completed round,
// applies score increments, archives the round, and evaluates the end
// condition against the updated state.
func (e *Engine) resolveRound(game *model.Game) {
	rel := model.RelationFor(game.Settings.Kind)

	// Enumerate unordered pairs in player order: result order depends
	// only on the game's fixed player order, never on submission order.
	results := make([]model.RoundResult, 0, len(game.Players)*(len(game.Players)-1)/2)
	for i := range game.Players {
		for j := i + 1; j < len(game.Players); j++ {
			first := &game.Players[i]
			second := &game.Players[j]

			a := game.CurrentRound.Inputs[first.Player.ID]
			b := game.CurrentRound.Inputs[second.Player.ID]

			switch rel.Compare(a, b) {
			case model.OutcomeFirstWins:
				first.Score++
				results = append(results, model.Win(first.Player.ID))
			case model.OutcomeSecondWins:
				second.Score++
				results = append(results, model.Win(second.Player.ID))
			default:
				results = append(results, model.Draw())
			}
		}
	}

	game.CurrentRound.Result = results
	game.RoundHistory = append(game.RoundHistory, game.CurrentRound)
	game.CurrentRound = model.NewRound()

	if e.endConditionMet(game) {
		game.Status = model.GameStatusEnded
		e.logger.Info("game ended",
			slog.Int64("game_id", int64(game.ID)),
			slog.Int("rounds", len(game.RoundHistory)),
			slog.Int("max_score", game.MaxScore()),
		)
	}
}

// endConditionMet evaluates the game's end condition against the state
// just after a round resolved.
func (e *Engine) endConditionMet(game *model.Game) bool {
	cond := game.Settings.EndCondition
	switch cond.Kind {
	case model.EndAfterTotalRounds:
		return len(game.RoundHistory) == cond.Target
	case model.EndAtFirstToScore:
		// Two players reaching the target in the same round simply
		// co-terminate the game.
		return game.MaxScore() == cond.Target
	default:
		return false
	}
}
