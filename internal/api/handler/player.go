package handler

import (
	"encoding/json"
	"net/http"

	"github.com/halfgrim/roshambo/internal/api/request"
	"github.com/halfgrim/roshambo/internal/api/response"
	"github.com/halfgrim/roshambo/internal/session"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	store session.StoreInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(store session.StoreInterface) *PlayerHandler {
	return &PlayerHandler{
		store: store,
	}
}

// Register handles POST /api/v1/players
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	player, err := h.store.RegisterPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}
