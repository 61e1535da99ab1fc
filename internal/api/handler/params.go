package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/halfgrim/roshambo/internal/model"
)

// pathID parses an int64 path variable (room_id, game_id).
func pathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, NewInvalidRequestError(name + " is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError(name + " must be an integer")
	}
	return id, nil
}

// queryPlayerID parses the player_id query parameter used by read
// operations, where there is no request body to carry identity.
func queryPlayerID(r *http.Request) (model.PlayerID, error) {
	raw := r.URL.Query().Get("player_id")
	if raw == "" {
		return 0, NewInvalidRequestError("player_id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("player_id must be an integer")
	}
	return model.PlayerID(id), nil
}
