package game

// Apply validates the action against the receiver, then produces the
// successor state. The receiver is never mutated: on success the returned
// state is a deep copy with the action applied, on failure the returned
// state is nil and the receiver is still current.
func (gs *GameState) Apply(a Action) (*GameState, error) {
	if err := gs.Validate(a); err != nil {
		return nil, err
	}

	ns := gs.Copy()

	switch a.Type {
	case StartGame:
		ns.Phase = PhaseSetupPlaceSettlement
		ns.logEvent(a.Player, StartGame, "setup begins")
	case PlaceSetupSettlement:
		ns.applySetupSettlement(a.Vertex)
	case PlaceSetupRoad:
		ns.applySetupRoad(a.Edge)
	case RollDice:
		ns.applyRollDice(a.Dice)
	case DiscardResources:
		ns.applyDiscard(a.Resources)
	case MoveRobber:
		ns.applyMoveRobber(a.Hex)
	case StealResource:
		ns.applySteal(a.Victim)
	case BuildRoad:
		ns.applyBuildRoad(a.Edge)
	case BuildSettlement:
		ns.applyBuildSettlement(a.Vertex)
	case BuildCity:
		ns.applyBuildCity(a.Vertex)
	case BuyDevCard:
		ns.applyBuyDevCard()
	case PlayKnight:
		ns.applyPlayKnight()
	case PlayRoadBuilding:
		ns.applyPlayRoadBuilding()
	case PlaceRoadBuildingRoad:
		ns.applyPlaceRoadBuildingRoad(a.Edge)
	case PlayYearOfPlenty:
		ns.applyPlayYearOfPlenty()
	case PickYearOfPlentyResources:
		ns.applyPickYearOfPlenty(a.Resources)
	case PlayMonopoly:
		ns.applyPlayMonopoly()
	case PickMonopolyResource:
		ns.applyPickMonopoly(a.Give)
	case MaritimeTrade:
		ns.applyMaritimeTrade(a.Give, a.Receive)
	case ProposeTrade:
		ns.applyProposeTrade(a.Offer, a.Request)
	case AcceptTrade:
		ns.applyAcceptTrade(a.Player)
	case RejectTrade:
		ns.applyRejectTrade(a.Player)
	case EndTurn:
		ns.applyEndTurn()
	}

	if a.Type.mutatesOccupancy() {
		ns.updateLongestRoad()
	}

	return ns, nil
}

// applyEndTurn closes out the current player's turn. Victory is only ever
// decided here, for the player whose turn is ending.
func (gs *GameState) applyEndTurn() {
	p := &gs.Players[gs.CurrentPlayer]
	p.DevCards = append(p.DevCards, p.NewDevCards...)
	p.NewDevCards = nil
	p.PlayedDevCardThisTurn = false
	gs.PendingTrade = nil

	gs.checkGameOver()
	if gs.Phase == PhaseGameOver {
		return
	}

	gs.logEvent(gs.CurrentPlayer, EndTurn, "turn over")
	gs.CurrentPlayer = (gs.CurrentPlayer + 1) % gs.PlayerCount()
	gs.TurnNumber++
	gs.LastRoll = [2]int{0, 0}
	gs.Phase = PhaseRollDice
}
