package model

import "time"

// GameID uniquely identifies a game, allocated from its own monotonic
// counter. Games are never deleted; ended games remain queryable.
type GameID int64

// GameStatus represents the lifecycle state of a game.
type GameStatus string

const (
	GameStatusRunning GameStatus = "running"
	GameStatusEnded   GameStatus = "ended" // terminal, game state is frozen
)

// RoundResult is the outcome of a single pair comparison within a
// resolved round: a draw, or a win for one of the pair.
type RoundResult struct {
	Winner *PlayerID // nil on a draw
}

// Draw returns the result for a tied pair.
func Draw() RoundResult {
	return RoundResult{}
}

// Win returns the result for a pair decided in favor of the given player.
func Win(id PlayerID) RoundResult {
	return RoundResult{Winner: &id}
}

// IsDraw reports whether the pair tied.
func (r RoundResult) IsDraw() bool {
	return r.Winner == nil
}

// RoundData is one simultaneous-action exchange. Inputs collects at most
// one action per player (last write wins); Result stays nil while the
// round is collecting and is populated exactly once, at resolution, with
// one entry per unordered player pair in player order.
type RoundData struct {
	Inputs map[PlayerID]Action
	Result []RoundResult
}

// NewRound returns an empty collecting round.
func NewRound() RoundData {
	return RoundData{Inputs: make(map[PlayerID]Action)}
}

// ScoredPlayer pairs a game participant with their cumulative score.
type ScoredPlayer struct {
	Player Player
	Score  int
}

// Game is a running or ended match. Players keeps the room's order and
// is never reordered; scores change only through round resolution.
type Game struct {
	ID           GameID
	Settings     GameSettings
	Players      []ScoredPlayer
	CurrentRound RoundData
	RoundHistory []RoundData
	Status       GameStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPlayer reports whether the given player participates in the game.
func (g *Game) HasPlayer(id PlayerID) bool {
	for _, sp := range g.Players {
		if sp.Player.ID == id {
			return true
		}
	}
	return false
}

// AllPlayersActed reports whether every participant has an input
// recorded for the current round.
func (g *Game) AllPlayersActed() bool {
	for _, sp := range g.Players {
		if _, ok := g.CurrentRound.Inputs[sp.Player.ID]; !ok {
			return false
		}
	}
	return true
}

// WaitingFor returns the participants that have not yet submitted an
// action for the in-progress round, in player order. Derived, not stored.
func (g *Game) WaitingFor() []Player {
	var waiting []Player
	for _, sp := range g.Players {
		if _, ok := g.CurrentRound.Inputs[sp.Player.ID]; !ok {
			waiting = append(waiting, sp.Player)
		}
	}
	return waiting
}

// MaxScore returns the highest cumulative score across all players.
func (g *Game) MaxScore() int {
	max := 0
	for _, sp := range g.Players {
		if sp.Score > max {
			max = sp.Score
		}
	}
	return max
}
