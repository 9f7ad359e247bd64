package game

// Heuristic scores for agents and search. Each evaluator returns a value in
// [-1, 1] from the given player's perspective, measured against the
// strongest opponent.

// EvaluatePoints compares raw victory points.
func EvaluatePoints(gs *GameState, player int) float64 {
	return normalize(float64(gs.VictoryPoints(player)), float64(gs.bestOpponent(player, gs.VictoryPoints)))
}

// EvaluateProduction compares expected income: for every building, the pip
// weight of each adjacent numbered hex, doubled for cities. The robber's hex
// contributes nothing.
func EvaluateProduction(gs *GameState, player int) float64 {
	prod := func(p int) int { return gs.productionPips(p) }
	return normalize(float64(prod(player)), float64(gs.bestOpponent(player, prod)))
}

// EvaluatePosition blends points, production and hand size. Points dominate
// because they are the win condition; production captures long-run strength.
func EvaluatePosition(gs *GameState, player int) float64 {
	points := EvaluatePoints(gs, player)
	production := EvaluateProduction(gs, player)
	cards := func(p int) int { return gs.Players[p].Hand.Total() }
	handScore := normalize(float64(cards(player)), float64(gs.bestOpponent(player, cards)))

	return (2*points + production + 0.5*handScore) / 3.5
}

func (gs *GameState) productionPips(player int) int {
	pips := 0
	for vid, b := range gs.Buildings {
		if b.Kind == NoBuilding || b.Owner != player {
			continue
		}
		weight := 1
		if b.Kind == City {
			weight = 2
		}
		for _, hid := range gs.Topology.VertexAdjacentHexes[vid] {
			if hid == gs.RobberHex || gs.Numbers[hid] == 0 {
				continue
			}
			pips += weight * (6 - abs(7-gs.Numbers[hid]))
		}
	}
	return pips
}

// bestOpponent returns the highest metric value among the other players.
func (gs *GameState) bestOpponent(player int, metric func(int) int) int {
	best := 0
	for pid := range gs.Players {
		if pid == player {
			continue
		}
		if v := metric(pid); v > best {
			best = v
		}
	}
	return best
}

// normalize maps value relative to otherValue to a score between -1 and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
