package game

// LegalActions enumerates the concrete actions available in the current
// state. The list is empty only when the game is over. Domestic trade
// proposals are deliberately not enumerated: the offer space is unbounded,
// so proposals arrive only from callers that construct them directly. While
// an offer is pending the list holds its resolutions.
func (gs *GameState) LegalActions() []Action {
	switch gs.Phase {
	case PhasePreGame:
		return []Action{NewStartGame(gs.CurrentPlayer)}

	case PhaseSetupPlaceSettlement:
		pid := gs.ActingPlayer()
		verts := gs.ValidSetupSettlementVertices()
		actions := make([]Action, 0, len(verts))
		for _, vid := range verts {
			actions = append(actions, NewPlaceSetupSettlement(pid, vid))
		}
		return actions

	case PhaseSetupPlaceRoad:
		pid := gs.ActingPlayer()
		edges := gs.ValidSetupRoadEdges()
		actions := make([]Action, 0, len(edges))
		for _, eid := range edges {
			actions = append(actions, NewPlaceSetupRoad(pid, eid))
		}
		return actions

	case PhaseRollDice:
		return []Action{NewRollDice(gs.CurrentPlayer)}

	case PhaseDiscard:
		pid := gs.ActingPlayer()
		hand := gs.Players[pid].Hand
		return enumerateDiscards(pid, hand, DiscardCount(hand))

	case PhaseMoveRobber:
		pid := gs.CurrentPlayer
		hexes := gs.ValidRobberHexes()
		actions := make([]Action, 0, len(hexes))
		for _, hid := range hexes {
			actions = append(actions, NewMoveRobber(pid, hid))
		}
		return actions

	case PhaseSteal:
		pid := gs.CurrentPlayer
		targets := gs.StealTargets(gs.RobberHex, pid)
		if len(targets) == 0 {
			return []Action{NewSteal(pid, NoVictim)}
		}
		actions := make([]Action, 0, len(targets))
		for _, victim := range targets {
			actions = append(actions, NewSteal(pid, victim))
		}
		return actions

	case PhaseTradeBuildPlay:
		if gs.PendingTrade != nil {
			return gs.tradeResolutionActions()
		}
		return gs.tradeBuildPlayActions()

	case PhaseRoadBuildingPlace:
		pid := gs.CurrentPlayer
		edges := gs.ValidRoadEdgesFree(pid)
		actions := make([]Action, 0, len(edges))
		for _, eid := range edges {
			actions = append(actions, NewPlaceRoadBuildingRoad(pid, eid))
		}
		return actions

	case PhaseYearOfPlentyPick:
		pid := gs.CurrentPlayer
		var actions []Action
		for i, r1 := range Resources {
			for _, r2 := range Resources[i:] {
				if r1 == r2 {
					if gs.Bank[r1] >= 2 {
						actions = append(actions, NewPickYearOfPlenty(pid, r1, r2))
					}
				} else if gs.Bank[r1] >= 1 && gs.Bank[r2] >= 1 {
					actions = append(actions, NewPickYearOfPlenty(pid, r1, r2))
				}
			}
		}
		return actions

	case PhaseMonopolyPick:
		pid := gs.CurrentPlayer
		actions := make([]Action, 0, NumResources)
		for _, r := range Resources {
			actions = append(actions, NewPickMonopoly(pid, r))
		}
		return actions
	}

	return nil
}

func (gs *GameState) tradeBuildPlayActions() []Action {
	pid := gs.CurrentPlayer
	p := gs.Players[pid]
	var actions []Action

	for _, eid := range gs.ValidRoadEdges(pid) {
		actions = append(actions, NewBuildRoad(pid, eid))
	}
	for _, vid := range gs.ValidSettlementVertices(pid) {
		actions = append(actions, NewBuildSettlement(pid, vid))
	}
	for _, vid := range gs.ValidCityVertices(pid) {
		actions = append(actions, NewBuildCity(pid, vid))
	}

	if gs.CanBuyDevCard(pid) {
		actions = append(actions, NewBuyDevCard(pid))
	}
	if !p.PlayedDevCardThisTurn {
		if gs.CanPlayDevCard(pid, Knight) {
			actions = append(actions, NewPlayKnight(pid))
		}
		if gs.CanPlayDevCard(pid, RoadBuilding) {
			actions = append(actions, NewPlayRoadBuilding(pid))
		}
		if gs.CanPlayDevCard(pid, YearOfPlenty) {
			actions = append(actions, NewPlayYearOfPlenty(pid))
		}
		if gs.CanPlayDevCard(pid, Monopoly) {
			actions = append(actions, NewPlayMonopoly(pid))
		}
	}

	for _, give := range Resources {
		for _, receive := range Resources {
			if gs.ValidMaritimeTrade(pid, give, receive) {
				actions = append(actions, NewMaritimeTrade(pid, give, receive))
			}
		}
	}

	actions = append(actions, NewEndTurn(pid))
	return actions
}

// tradeResolutionActions lists the ways a pending domestic offer can end:
// an accept by each opponent able to honour it, and a withdrawal by the
// proposer. If the proposer no longer holds the offer, only the withdrawal
// remains.
func (gs *GameState) tradeResolutionActions() []Action {
	trade := gs.PendingTrade
	var actions []Action
	if gs.Players[trade.Proposer].Hand.Covers(trade.Offer) {
		for pid := range gs.Players {
			if pid == trade.Proposer {
				continue
			}
			if gs.Players[pid].Hand.Covers(trade.Request) {
				actions = append(actions, NewAcceptTrade(pid))
			}
		}
	}
	actions = append(actions, NewRejectTrade(trade.Proposer))
	return actions
}

// enumerateDiscards lists every way to give up exactly count cards from
// hand, one action per multiset. Branches that cannot reach the target with
// the cards remaining are pruned.
func enumerateDiscards(pid int, hand Hand, count int) []Action {
	var actions []Action
	suffix := [NumResources + 1]int{}
	for i := NumResources - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + hand[i]
	}

	var pick Hand
	var recurse func(idx, remaining int)
	recurse = func(idx, remaining int) {
		if idx == NumResources {
			if remaining == 0 {
				actions = append(actions, NewDiscard(pid, pick))
			}
			return
		}
		max := hand[idx]
		if remaining < max {
			max = remaining
		}
		for take := 0; take <= max; take++ {
			if remaining-take > suffix[idx+1] {
				continue
			}
			pick[idx] = take
			recurse(idx+1, remaining-take)
		}
		pick[idx] = 0
	}
	recurse(0, count)
	return actions
}
