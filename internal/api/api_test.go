package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfgrim/roshambo/internal/api"
	"github.com/halfgrim/roshambo/internal/api/response"
	"github.com/halfgrim/roshambo/internal/factory"
)

// testServer wires the router over a fresh in-memory app
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger: logger,
		Store:  app.SessionStore,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) registerPlayer(t *testing.T, name string) response.Player {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	return player
}

func (ts *testServer) createRoom(t *testing.T, playerID int64, name string) response.Room {
	t.Helper()

	body := map[string]any{"player_id": playerID, "room_name": name}
	rr := ts.request(http.MethodPost, "/api/v1/rooms", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	return room
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, int64(0), player.ID)
	assert.Equal(t, "Alice", player.Name)
}

func TestRegisterDuplicateName(t *testing.T) {
	ts := newTestServer(t)
	ts.registerPlayer(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NAME_TAKEN")
}

func TestRegisterEmptyName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateRoomRedactsPlayerIDs(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")

	body := map[string]any{"player_id": alice.ID, "room_name": "lounge"}
	rr := ts.request(http.MethodPost, "/api/v1/rooms", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Room members are exposed by name only
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	players := raw["players"].([]any)
	require.Len(t, players, 1)
	member := players[0].(map[string]any)
	assert.Equal(t, "Alice", member["name"])
	assert.NotContains(t, member, "id")
}

func TestCreateRoomUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"player_id": 42, "room_name": "lounge"}
	rr := ts.request(http.MethodPost, "/api/v1/rooms", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_NOT_FOUND")
}

func TestCreateRoomInvalidSettings(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")

	body := map[string]any{
		"player_id": alice.ID,
		"room_name": "solo",
		"settings": map[string]any{
			"kind":          "rock_paper_scissors",
			"player_count":  1,
			"end_condition": map[string]any{"kind": "first_to_score", "target": 3},
		},
	}
	rr := ts.request(http.MethodPost, "/api/v1/rooms", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_SETTINGS")
}

func TestListRoomsIsPublic(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")
	ts.createRoom(t, alice.ID, "lounge")

	rr := ts.request(http.MethodGet, "/api/v1/rooms", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.RoomList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Rooms, 1)
	assert.Equal(t, "lounge", list.Rooms[0].Name)
}

func TestGetRoomRequiresMembership(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")
	bob := ts.registerPlayer(t, "Bob")
	room := ts.createRoom(t, alice.ID, "lounge")

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%d?player_id=%d", room.ID, alice.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%d?player_id=%d", room.ID, bob.ID), nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_IN_ROOM")
}

func TestJoinRoom(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")
	bob := ts.registerPlayer(t, "Bob")
	room := ts.createRoom(t, alice.ID, "lounge")

	body := map[string]any{"player_id": bob.ID}
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/join", room.ID), body)
	require.Equal(t, http.StatusOK, rr.Code)

	var joined response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &joined))
	require.Len(t, joined.Players, 2)
	assert.Equal(t, "Bob", joined.Players[1].Name)

	// Default capacity is 2, so a third join fails
	charlie := ts.registerPlayer(t, "Charlie")
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/join", room.ID), map[string]any{"player_id": charlie.ID})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ROOM_FULL")
}

func TestLeaveRoom(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")
	room := ts.createRoom(t, alice.ID, "lounge")

	body := map[string]any{"player_id": alice.ID}
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/leave", room.ID), body)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Emptied room is gone
	rr = ts.request(http.MethodGet, "/api/v1/rooms", nil)
	var list response.RoomList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Rooms)
}

func TestLaunchGates(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")
	bob := ts.registerPlayer(t, "Bob")
	room := ts.createRoom(t, alice.ID, "lounge")

	// Not full yet
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/launch", room.ID), map[string]any{"player_id": alice.ID})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ROOM_NOT_FULL")

	joinBody := map[string]any{"player_id": bob.ID}
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/join", room.ID), joinBody)
	require.Equal(t, http.StatusOK, rr.Code)

	// Non-host cannot launch
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/launch", room.ID), map[string]any{"player_id": bob.ID})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_HOST")

	// Host launch succeeds
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/launch", room.ID), map[string]any{"player_id": alice.ID})
	require.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, "running", game.Status)

	// Room was consumed by the launch
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/launch", room.ID), map[string]any{"player_id": alice.ID})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "ROOM_NOT_FOUND")
}

// launchGame registers two players, fills a room, and launches it.
func launchGame(t *testing.T, ts *testServer) (response.Player, response.Player, response.Game) {
	t.Helper()

	alice := ts.registerPlayer(t, "Alice")
	bob := ts.registerPlayer(t, "Bob")
	room := ts.createRoom(t, alice.ID, "lounge")

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/join", room.ID), map[string]any{"player_id": bob.ID})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%d/launch", room.ID), map[string]any{"player_id": alice.ID})
	require.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return alice, bob, game
}

func TestPlayFullGame(t *testing.T) {
	ts := newTestServer(t)
	alice, bob, game := launchGame(t, ts)

	// Alice acts first; Bob is the only one the game still waits on
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%d/play", game.ID), map[string]any{"player_id": alice.ID, "action": "rock"})
	require.Equal(t, http.StatusOK, rr.Code)

	var state response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	require.Len(t, state.WaitingForPlayers, 1)
	assert.Equal(t, "Bob", state.WaitingForPlayers[0].Name)
	assert.Empty(t, state.RoundHistory)

	// Bob's action resolves the round
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%d/play", game.ID), map[string]any{"player_id": bob.ID, "action": "scissors"})
	require.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	require.Len(t, state.RoundHistory, 1)
	round := state.RoundHistory[0]
	assert.Equal(t, "rock", round.Inputs[alice.ID])
	assert.Equal(t, "scissors", round.Inputs[bob.ID])
	require.Len(t, round.Results, 1)
	require.NotNil(t, round.Results[0].Winner)
	assert.Equal(t, alice.ID, *round.Results[0].Winner)
	assert.Equal(t, 1, state.Players[0].Score)
	assert.Len(t, state.WaitingForPlayers, 2)
}

func TestGetGameRequiresParticipation(t *testing.T) {
	ts := newTestServer(t)
	alice, _, game := launchGame(t, ts)
	mallory := ts.registerPlayer(t, "Mallory")

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%d?player_id=%d", game.ID, alice.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%d?player_id=%d", game.ID, mallory.ID), nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_IN_GAME")
}

func TestPlayInvalidAction(t *testing.T) {
	ts := newTestServer(t)
	alice, _, game := launchGame(t, ts)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%d/play", game.ID), map[string]any{"player_id": alice.ID, "action": "lizard"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestGetUnknownGame(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerPlayer(t, "Alice")

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/42?player_id=%d", alice.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}
