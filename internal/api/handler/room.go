package handler

import (
	"encoding/json"
	"net/http"

	"github.com/halfgrim/roshambo/internal/api/request"
	"github.com/halfgrim/roshambo/internal/api/response"
	"github.com/halfgrim/roshambo/internal/model"
	"github.com/halfgrim/roshambo/internal/session"
)

// RoomHandler handles room-related endpoints
type RoomHandler struct {
	store session.StoreInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(store session.StoreInterface) *RoomHandler {
	return &RoomHandler{
		store: store,
	}
}

// List handles GET /api/v1/rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.store.ListRooms(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomListFromModel(rooms))
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.RoomName == "" {
		WriteError(w, NewInvalidRequestError("room_name is required"))
		return
	}

	var settings *model.GameSettings
	if req.Settings != nil {
		settings = &model.GameSettings{
			Kind:        model.GameKind(req.Settings.Kind),
			PlayerCount: req.Settings.PlayerCount,
			EndCondition: model.EndCondition{
				Kind:   model.EndConditionKind(req.Settings.EndCondition.Kind),
				Target: req.Settings.EndCondition.Target,
			},
		}
	}

	room, err := h.store.CreateRoom(r.Context(), model.PlayerID(req.PlayerID), req.RoomName, settings)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoomFromModel(room))
}

// Get handles GET /api/v1/rooms/{room_id}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "room_id")
	if err != nil {
		WriteError(w, err)
		return
	}
	playerID, err := queryPlayerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	room, err := h.store.GetRoom(r.Context(), playerID, model.RoomID(roomID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Join handles POST /api/v1/rooms/{room_id}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID, req, err := roomAction(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	room, err := h.store.JoinRoom(r.Context(), model.PlayerID(req.PlayerID), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Leave handles POST /api/v1/rooms/{room_id}/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	roomID, req, err := roomAction(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.store.LeaveRoom(r.Context(), model.PlayerID(req.PlayerID), roomID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Launch handles POST /api/v1/rooms/{room_id}/launch
func (h *RoomHandler) Launch(w http.ResponseWriter, r *http.Request) {
	roomID, req, err := roomAction(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.store.LaunchRoom(r.Context(), model.PlayerID(req.PlayerID), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// roomAction parses the shared path + body shape of join/leave/launch.
func roomAction(r *http.Request) (model.RoomID, request.RoomActionRequest, error) {
	var req request.RoomActionRequest

	roomID, err := pathID(r, "room_id")
	if err != nil {
		return 0, req, err
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, req, NewInvalidRequestError("invalid request body")
	}

	return model.RoomID(roomID), req, nil
}
