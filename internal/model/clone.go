package model

// Clone helpers so the session layer never hands out references into
// stored state.

// Clone returns a deep copy of the room.
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	out := *r
	out.Players = make([]Player, len(r.Players))
	copy(out.Players, r.Players)
	return &out
}

// Clone returns a deep copy of the round, including its result sequence.
func (rd RoundData) Clone() RoundData {
	out := RoundData{}
	if rd.Inputs != nil {
		out.Inputs = make(map[PlayerID]Action, len(rd.Inputs))
		for id, action := range rd.Inputs {
			out.Inputs[id] = action
		}
	}
	if rd.Result != nil {
		out.Result = make([]RoundResult, len(rd.Result))
		for i, res := range rd.Result {
			if res.Winner != nil {
				winner := *res.Winner
				res.Winner = &winner
			}
			out.Result[i] = res
		}
	}
	return out
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Players = make([]ScoredPlayer, len(g.Players))
	copy(out.Players, g.Players)
	out.CurrentRound = g.CurrentRound.Clone()
	out.RoundHistory = make([]RoundData, len(g.RoundHistory))
	for i, rd := range g.RoundHistory {
		out.RoundHistory[i] = rd.Clone()
	}
	return &out
}
