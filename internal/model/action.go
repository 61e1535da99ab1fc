package model

// Action is a move a player can submit for a round.
type Action string

const (
	ActionRock     Action = "rock"
	ActionPaper    Action = "paper"
	ActionScissors Action = "scissors"
)

// Outcome is the result of comparing two actions under a beats relation.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeFirstWins
	OutcomeSecondWins
)

// BeatsRelation is a total comparison over a closed action set: for
// every ordered pair of actions it yields exactly one of tie,
// first-wins, or second-wins, with equal actions always a tie.
type BeatsRelation interface {
	// Compare resolves a single pair of actions.
	Compare(a, b Action) Outcome
	// Actions enumerates the valid action set, for input validation.
	Actions() []Action
}

// rpsRelation is the classic relation: rock beats scissors, scissors
// beats paper, paper beats rock.
type rpsRelation struct{}

// rpsBeats maps each action to the action it defeats.
var rpsBeats = map[Action]Action{
	ActionRock:     ActionScissors,
	ActionScissors: ActionPaper,
	ActionPaper:    ActionRock,
}

func (rpsRelation) Compare(a, b Action) Outcome {
	switch {
	case a == b:
		return OutcomeTie
	case rpsBeats[a] == b:
		return OutcomeFirstWins
	default:
		return OutcomeSecondWins
	}
}

func (rpsRelation) Actions() []Action {
	return []Action{ActionRock, ActionPaper, ActionScissors}
}

// RelationFor returns the beats relation for a game kind, or nil if the
// kind is unknown.
func RelationFor(kind GameKind) BeatsRelation {
	if kind == KindRockPaperScissors {
		return rpsRelation{}
	}
	return nil
}

// ValidAction reports whether the action belongs to the kind's action set.
func ValidAction(kind GameKind, a Action) bool {
	rel := RelationFor(kind)
	if rel == nil {
		return false
	}
	for _, valid := range rel.Actions() {
		if valid == a {
			return true
		}
	}
	return false
}
