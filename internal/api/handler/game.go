package handler

import (
	"encoding/json"
	"net/http"

	"github.com/halfgrim/roshambo/internal/api/request"
	"github.com/halfgrim/roshambo/internal/api/response"
	"github.com/halfgrim/roshambo/internal/model"
	"github.com/halfgrim/roshambo/internal/session"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	store session.StoreInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(store session.StoreInterface) *GameHandler {
	return &GameHandler{
		store: store,
	}
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}
	playerID, err := queryPlayerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.store.GetGame(r.Context(), playerID, model.GameID(gameID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Play handles POST /api/v1/games/{game_id}/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.PlayRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// Action validity is a wire concern: the engine assumes actions
	// belong to the game kind's closed set.
	action := model.Action(req.Action)
	if !model.ValidAction(model.KindRockPaperScissors, action) {
		WriteError(w, NewInvalidRequestError("action must be one of rock, paper, scissors"))
		return
	}

	game, err := h.store.PlayRound(r.Context(), model.PlayerID(req.PlayerID), model.GameID(gameID), action)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}
