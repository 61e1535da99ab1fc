package model

// GameKind identifies the family of game a room will launch into.
// Only the simultaneous-action rock-paper-scissors kind exists today;
// new kinds plug in as a new action set plus a new beats table.
type GameKind string

const (
	KindRockPaperScissors GameKind = "rock_paper_scissors"
)

// EndConditionKind selects how a running game decides it is over.
type EndConditionKind string

const (
	// EndAfterTotalRounds ends the game once exactly Target rounds
	// have been resolved.
	EndAfterTotalRounds EndConditionKind = "total_rounds"
	// EndAtFirstToScore ends the game the instant any player's
	// cumulative score reaches Target.
	EndAtFirstToScore EndConditionKind = "first_to_score"
)

// EndCondition is the rule determining when a running game transitions
// to ended, evaluated only at the instant a round resolves.
type EndCondition struct {
	Kind   EndConditionKind
	Target int
}

// GameSettings holds the per-room configuration a game is launched with.
type GameSettings struct {
	Kind         GameKind
	PlayerCount  int
	EndCondition EndCondition
}

// DefaultGameSettings returns the settings used when a room is created
// without explicit ones: two-player rock-paper-scissors, first to 3.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		Kind:        KindRockPaperScissors,
		PlayerCount: 2,
		EndCondition: EndCondition{
			Kind:   EndAtFirstToScore,
			Target: 3,
		},
	}
}

// Validate rejects settings the round-resolution algorithm has no
// defined behavior for: unknown kinds, rooms that could never hold a
// pair of players, and zero-target end conditions.
func (s GameSettings) Validate() error {
	if s.Kind != KindRockPaperScissors {
		return ErrInvalidSettings
	}
	if s.PlayerCount < 2 {
		return ErrInvalidSettings
	}
	switch s.EndCondition.Kind {
	case EndAfterTotalRounds, EndAtFirstToScore:
	default:
		return ErrInvalidSettings
	}
	if s.EndCondition.Target < 1 {
		return ErrInvalidSettings
	}
	return nil
}
