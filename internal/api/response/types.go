package response

import (
	"github.com/halfgrim/roshambo/internal/model"
)

// Player is the full player view, returned only to the player
// themselves at registration time.
type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:   int64(p.ID),
		Name: p.Name,
	}
}

// PublicPlayer is the redacted player view used in room and game
// listings: name only, no numeric id.
type PublicPlayer struct {
	Name string `json:"name"`
}

// PublicPlayerFromModel converts a model.Player to its public view
func PublicPlayerFromModel(p model.Player) PublicPlayer {
	return PublicPlayer{Name: p.Name}
}

// EndCondition is the wire form of a game end condition
type EndCondition struct {
	Kind   string `json:"kind"`
	Target int    `json:"target"`
}

// GameSettings is the wire form of game settings
type GameSettings struct {
	Kind         string       `json:"kind"`
	PlayerCount  int          `json:"player_count"`
	EndCondition EndCondition `json:"end_condition"`
}

// GameSettingsFromModel converts model.GameSettings
func GameSettingsFromModel(s model.GameSettings) GameSettings {
	return GameSettings{
		Kind:        string(s.Kind),
		PlayerCount: s.PlayerCount,
		EndCondition: EndCondition{
			Kind:   string(s.EndCondition.Kind),
			Target: s.EndCondition.Target,
		},
	}
}

// Room is the public room view: member identity is name-only.
type Room struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Settings GameSettings   `json:"settings"`
	Players  []PublicPlayer `json:"players"`
}

// RoomFromModel converts model.Room to its public view
func RoomFromModel(r *model.Room) Room {
	players := make([]PublicPlayer, len(r.Players))
	for i, p := range r.Players {
		players[i] = PublicPlayerFromModel(p)
	}
	return Room{
		ID:       int64(r.ID),
		Name:     r.Name,
		Settings: GameSettingsFromModel(r.Settings),
		Players:  players,
	}
}

// RoomList wraps the public lobby listing
type RoomList struct {
	Rooms []Room `json:"rooms"`
}

// RoomListFromModel converts a slice of rooms to the listing view
func RoomListFromModel(rooms []*model.Room) RoomList {
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = RoomFromModel(r)
	}
	return RoomList{Rooms: out}
}

// ScoredPlayer pairs a public player view with their cumulative score
type ScoredPlayer struct {
	Player PublicPlayer `json:"player"`
	Score  int          `json:"score"`
}

// RoundResult is the outcome of one pair comparison; winner is null on
// a draw.
type RoundResult struct {
	Winner *int64 `json:"winner"`
}

// Round is a completed round: who played what, and the pair outcomes
// in player-order pair enumeration.
type Round struct {
	Inputs  map[int64]string `json:"inputs"`
	Results []RoundResult    `json:"results"`
}

// RoundFromModel converts a resolved model.RoundData
func RoundFromModel(rd model.RoundData) Round {
	inputs := make(map[int64]string, len(rd.Inputs))
	for id, action := range rd.Inputs {
		inputs[int64(id)] = string(action)
	}
	results := make([]RoundResult, len(rd.Result))
	for i, res := range rd.Result {
		if res.Winner != nil {
			w := int64(*res.Winner)
			results[i] = RoundResult{Winner: &w}
		}
	}
	return Round{Inputs: inputs, Results: results}
}

// Game is the game view returned to participants. waiting_for_players
// lists, in player order, everyone who has not yet acted this round.
type Game struct {
	ID                int64          `json:"id"`
	Settings          GameSettings   `json:"settings"`
	Status            string         `json:"status"`
	Players           []ScoredPlayer `json:"players"`
	WaitingForPlayers []PublicPlayer `json:"waiting_for_players"`
	RoundHistory      []Round        `json:"round_history"`
}

// GameFromModel converts model.Game to its participant view
func GameFromModel(g *model.Game) Game {
	players := make([]ScoredPlayer, len(g.Players))
	for i, sp := range g.Players {
		players[i] = ScoredPlayer{
			Player: PublicPlayerFromModel(sp.Player),
			Score:  sp.Score,
		}
	}

	waiting := []PublicPlayer{}
	for _, p := range g.WaitingFor() {
		waiting = append(waiting, PublicPlayerFromModel(p))
	}

	history := make([]Round, len(g.RoundHistory))
	for i, rd := range g.RoundHistory {
		history[i] = RoundFromModel(rd)
	}

	return Game{
		ID:                int64(g.ID),
		Settings:          GameSettingsFromModel(g.Settings),
		Status:            string(g.Status),
		Players:           players,
		WaitingForPlayers: waiting,
		RoundHistory:      history,
	}
}
