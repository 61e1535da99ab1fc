package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Room:
		o.printRoom(v)
	case RoomList:
		o.printRoomList(v)
	case Game:
		o.printGame(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PublicPlayer response type
type PublicPlayer struct {
	Name string `json:"name"`
}

// EndCondition response type
type EndCondition struct {
	Kind   string `json:"kind"`
	Target int    `json:"target"`
}

// GameSettings response type
type GameSettings struct {
	Kind         string       `json:"kind"`
	PlayerCount  int          `json:"player_count"`
	EndCondition EndCondition `json:"end_condition"`
}

// Room response type
type Room struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Settings GameSettings   `json:"settings"`
	Players  []PublicPlayer `json:"players"`
}

// RoomList response type
type RoomList struct {
	Rooms []Room `json:"rooms"`
}

// ScoredPlayer response type
type ScoredPlayer struct {
	Player PublicPlayer `json:"player"`
	Score  int          `json:"score"`
}

// RoundResult response type
type RoundResult struct {
	Winner *int64 `json:"winner"`
}

// Round response type
type Round struct {
	Inputs  map[int64]string `json:"inputs"`
	Results []RoundResult    `json:"results"`
}

// Game response type
type Game struct {
	ID                int64          `json:"id"`
	Settings          GameSettings   `json:"settings"`
	Status            string         `json:"status"`
	Players           []ScoredPlayer `json:"players"`
	WaitingForPlayers []PublicPlayer `json:"waiting_for_players"`
	RoundHistory      []Round        `json:"round_history"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%d)\n", p.Name, p.ID)
}

func (o *Output) printSettings(s GameSettings) {
	fmt.Printf("Game: %s\n", s.Kind)
	fmt.Printf("Players: %d\n", s.PlayerCount)
	fmt.Printf("End: %s %d\n", s.EndCondition.Kind, s.EndCondition.Target)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s (%d)\n", r.Name, r.ID)
	o.printSettings(r.Settings)
	fmt.Printf("Members (%d/%d):\n", len(r.Players), r.Settings.PlayerCount)
	for i, p := range r.Players {
		hostStr := ""
		if i == 0 {
			hostStr = " [host]"
		}
		fmt.Printf("  - %s%s\n", p.Name, hostStr)
	}
}

func (o *Output) printRoomList(l RoomList) {
	if len(l.Rooms) == 0 {
		fmt.Println("No open rooms")
		return
	}
	fmt.Printf("Rooms (%d):\n", len(l.Rooms))
	for _, r := range l.Rooms {
		fmt.Printf("  %d  %s  (%d/%d players)\n", r.ID, r.Name, len(r.Players), r.Settings.PlayerCount)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %d\n", g.ID)
	fmt.Printf("Status: %s\n", g.Status)
	o.printSettings(g.Settings)

	fmt.Println("Scores:")
	for _, sp := range g.Players {
		fmt.Printf("  %s: %d\n", sp.Player.Name, sp.Score)
	}

	if len(g.WaitingForPlayers) > 0 {
		names := make([]string, len(g.WaitingForPlayers))
		for i, p := range g.WaitingForPlayers {
			names[i] = p.Name
		}
		fmt.Printf("Waiting for: %s\n", strings.Join(names, ", "))
	}

	fmt.Printf("Rounds played: %d\n", len(g.RoundHistory))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
