package game

// Validate is the total legality function: nil for a legal action, otherwise
// an error wrapping ErrIllegalAction with the reason. It never mutates state.
//
// The general contract, checked for every kind: the declared actor must be
// the seat the phase designates (AcceptTrade/RejectTrade carve out their own
// actor rules), the state's phase must be the one phase the kind is legal in,
// and the kind-specific predicate must hold.
func (gs *GameState) Validate(a Action) error {
	if gs.Phase == PhaseGameOver {
		return ErrGameOver
	}
	if a.Player < 0 || a.Player >= gs.PlayerCount() {
		return illegalf(ErrInvalidTarget, "no such player %d", a.Player)
	}

	// Accept/reject are the only kinds whose actor is not the designated
	// seat: any non-proposer may accept, anyone may reject.
	if a.Type != AcceptTrade && a.Type != RejectTrade {
		if a.Player != gs.ActingPlayer() {
			return illegalf(ErrNotYourTurn, "player %d may not act now", a.Player)
		}
	}

	switch a.Type {
	case StartGame:
		return gs.validatePhase(a, PhasePreGame)

	case PlaceSetupSettlement:
		if err := gs.validatePhase(a, PhaseSetupPlaceSettlement); err != nil {
			return err
		}
		if a.Vertex < 0 || a.Vertex >= gs.Topology.VertexCount {
			return illegalf(ErrInvalidTarget, "no such vertex %d", a.Vertex)
		}
		if gs.Buildings[a.Vertex].Kind != NoBuilding {
			return illegalf(ErrInvalidTarget, "vertex %d is occupied", a.Vertex)
		}
		if gs.hasAdjacentBuilding(a.Vertex) {
			return illegalf(ErrInvalidTarget, "vertex %d touches another building", a.Vertex)
		}
		return nil

	case PlaceSetupRoad:
		if err := gs.validatePhase(a, PhaseSetupPlaceRoad); err != nil {
			return err
		}
		if !containsInt(gs.ValidSetupRoadEdges(), a.Edge) {
			return illegalf(ErrInvalidTarget, "edge %d does not touch the placed settlement", a.Edge)
		}
		return nil

	case RollDice:
		if err := gs.validatePhase(a, PhaseRollDice); err != nil {
			return err
		}
		// An override must set both dice; a zero pair requests a random roll.
		d1, d2 := a.Dice[0], a.Dice[1]
		if d1 == 0 && d2 == 0 {
			return nil
		}
		if d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
			return illegalf(ErrInvalidTarget, "dice override %d+%d out of range", d1, d2)
		}
		return nil

	case DiscardResources:
		if err := gs.validatePhase(a, PhaseDiscard); err != nil {
			return err
		}
		hand := gs.Players[a.Player].Hand
		required := DiscardCount(hand)
		if a.Resources.Total() != required {
			return illegalf(ErrInvalidTarget, "must discard exactly %d cards", required)
		}
		for _, r := range Resources {
			if a.Resources[r] < 0 || a.Resources[r] > hand[r] {
				return illegalf(ErrInsufficientResources, "cannot discard %d %s", a.Resources[r], r)
			}
		}
		return nil

	case MoveRobber:
		if err := gs.validatePhase(a, PhaseMoveRobber); err != nil {
			return err
		}
		if a.Hex < 0 || a.Hex >= len(gs.Terrains) {
			return illegalf(ErrInvalidTarget, "no such hex %d", a.Hex)
		}
		if a.Hex == gs.RobberHex {
			return illegalf(ErrInvalidTarget, "robber is already on hex %d", a.Hex)
		}
		return nil

	case StealResource:
		if err := gs.validatePhase(a, PhaseSteal); err != nil {
			return err
		}
		targets := gs.StealTargets(gs.RobberHex, a.Player)
		if a.Victim == NoVictim {
			return nil
		}
		if !containsInt(targets, a.Victim) {
			return illegalf(ErrInvalidTarget, "player %d cannot be robbed", a.Victim)
		}
		return nil

	case BuildRoad:
		if err := gs.validateBuild(a); err != nil {
			return err
		}
		p := gs.Players[a.Player]
		if p.RoadsLeft <= 0 {
			return illegalf(ErrNoPiecesLeft, "no road pieces left")
		}
		if !p.Hand.Covers(RoadCost) {
			return illegalf(ErrInsufficientResources, "a road costs 1 lumber and 1 brick")
		}
		if !gs.validRoadEdge(a.Player, a.Edge) {
			return illegalf(ErrInvalidTarget, "edge %d is not buildable", a.Edge)
		}
		return nil

	case BuildSettlement:
		if err := gs.validateBuild(a); err != nil {
			return err
		}
		p := gs.Players[a.Player]
		if p.SettlementsLeft <= 0 {
			return illegalf(ErrNoPiecesLeft, "no settlement pieces left")
		}
		if !p.Hand.Covers(SettlementCost) {
			return illegalf(ErrInsufficientResources, "a settlement costs 1 lumber, 1 brick, 1 wool and 1 grain")
		}
		if !gs.validSettlementVertex(a.Player, a.Vertex) {
			return illegalf(ErrInvalidTarget, "vertex %d is not buildable", a.Vertex)
		}
		return nil

	case BuildCity:
		if err := gs.validateBuild(a); err != nil {
			return err
		}
		p := gs.Players[a.Player]
		if p.CitiesLeft <= 0 {
			return illegalf(ErrNoPiecesLeft, "no city pieces left")
		}
		if !p.Hand.Covers(CityCost) {
			return illegalf(ErrInsufficientResources, "a city costs 2 grain and 3 ore")
		}
		if a.Vertex < 0 || a.Vertex >= gs.Topology.VertexCount {
			return illegalf(ErrInvalidTarget, "no such vertex %d", a.Vertex)
		}
		b := gs.Buildings[a.Vertex]
		if b.Kind != Settlement || b.Owner != a.Player {
			return illegalf(ErrInvalidTarget, "vertex %d holds no settlement of yours", a.Vertex)
		}
		return nil

	case BuyDevCard:
		if err := gs.validateBuild(a); err != nil {
			return err
		}
		if len(gs.DevDeck) == 0 {
			return ErrDeckEmpty
		}
		if !gs.Players[a.Player].Hand.Covers(DevCardCost) {
			return illegalf(ErrInsufficientResources, "a development card costs 1 wool, 1 grain and 1 ore")
		}
		return nil

	case PlayKnight:
		return gs.validatePlayCard(a, Knight)

	case PlayRoadBuilding:
		return gs.validatePlayCard(a, RoadBuilding)

	case PlayYearOfPlenty:
		return gs.validatePlayCard(a, YearOfPlenty)

	case PlayMonopoly:
		return gs.validatePlayCard(a, Monopoly)

	case PlaceRoadBuildingRoad:
		if err := gs.validatePhase(a, PhaseRoadBuildingPlace); err != nil {
			return err
		}
		if !gs.validRoadEdge(a.Player, a.Edge) {
			return illegalf(ErrInvalidTarget, "edge %d is not buildable", a.Edge)
		}
		if gs.Players[a.Player].RoadsLeft <= 0 {
			return illegalf(ErrNoPiecesLeft, "no road pieces left")
		}
		return nil

	case PickYearOfPlentyResources:
		if err := gs.validatePhase(a, PhaseYearOfPlentyPick); err != nil {
			return err
		}
		if a.Resources.Total() != 2 {
			return illegalf(ErrInvalidTarget, "must pick exactly 2 resources")
		}
		for _, r := range Resources {
			if a.Resources[r] < 0 {
				return illegalf(ErrInvalidTarget, "negative pick")
			}
			if a.Resources[r] > gs.Bank[r] {
				return illegalf(ErrBankEmpty, "bank holds %d %s", gs.Bank[r], r)
			}
		}
		return nil

	case PickMonopolyResource:
		if err := gs.validatePhase(a, PhaseMonopolyPick); err != nil {
			return err
		}
		if !validResource(a.Give) {
			return illegalf(ErrInvalidTarget, "no such resource %d", a.Give)
		}
		return nil

	case MaritimeTrade:
		// Bank trades stay open while a domestic offer is pending; only
		// building, purchases and further proposals are blocked.
		if err := gs.validatePhase(a, PhaseTradeBuildPlay); err != nil {
			return err
		}
		if !validResource(a.Give) || !validResource(a.Receive) {
			return illegalf(ErrInvalidTarget, "no such resource")
		}
		if a.Give == a.Receive {
			return illegalf(ErrInvalidTarget, "cannot trade %s for itself", a.Give)
		}
		ratio := gs.TradeRatio(a.Player, a.Give)
		if gs.Players[a.Player].Hand[a.Give] < ratio {
			return illegalf(ErrInsufficientResources, "need %d %s at your ratio", ratio, a.Give)
		}
		if gs.Bank[a.Receive] <= 0 {
			return illegalf(ErrBankEmpty, "bank holds no %s", a.Receive)
		}
		return nil

	case ProposeTrade:
		if err := gs.validatePhase(a, PhaseTradeBuildPlay); err != nil {
			return err
		}
		if gs.PendingTrade != nil {
			return ErrTradePending
		}
		if a.Offer.Total() == 0 || a.Request.Total() == 0 {
			return illegalf(ErrInvalidTarget, "offer and request must be non-empty")
		}
		for _, r := range Resources {
			if a.Offer[r] < 0 || a.Request[r] < 0 {
				return illegalf(ErrInvalidTarget, "negative trade amount")
			}
		}
		if !gs.Players[a.Player].Hand.Covers(a.Offer) {
			return illegalf(ErrInsufficientResources, "you do not hold the offered resources")
		}
		return nil

	case AcceptTrade:
		if err := gs.validatePhase(a, PhaseTradeBuildPlay); err != nil {
			return err
		}
		if gs.PendingTrade == nil {
			return ErrNoTradePending
		}
		trade := gs.PendingTrade
		if a.Player == trade.Proposer {
			return illegalf(ErrInvalidTarget, "proposer cannot accept their own offer")
		}
		if !gs.Players[a.Player].Hand.Covers(trade.Request) {
			return illegalf(ErrInsufficientResources, "you do not hold the requested resources")
		}
		// Re-verified at accept time: the proposer may have spent the offer
		// since proposing.
		if !gs.Players[trade.Proposer].Hand.Covers(trade.Offer) {
			return illegalf(ErrInsufficientResources, "proposer no longer holds the offered resources")
		}
		return nil

	case RejectTrade:
		if err := gs.validatePhase(a, PhaseTradeBuildPlay); err != nil {
			return err
		}
		if gs.PendingTrade == nil {
			return ErrNoTradePending
		}
		return nil

	case EndTurn:
		return gs.validatePhase(a, PhaseTradeBuildPlay)
	}

	return illegalf(ErrIllegalAction, "unknown action type %d", a.Type)
}

func validResource(r Resource) bool {
	return r >= 0 && int(r) < NumResources
}

func (gs *GameState) validatePhase(a Action, want Phase) error {
	if gs.Phase != want {
		return illegalf(ErrWrongPhase, "%s is not legal during %s", a.Type, gs.Phase)
	}
	return nil
}

// validateBuild is the shared gate for building and purchase actions: the
// main phase, and no unresolved domestic trade offer.
func (gs *GameState) validateBuild(a Action) error {
	if err := gs.validatePhase(a, PhaseTradeBuildPlay); err != nil {
		return err
	}
	if gs.PendingTrade != nil {
		return ErrTradePending
	}
	return nil
}

func (gs *GameState) validatePlayCard(a Action, card DevCard) error {
	if err := gs.validatePhase(a, PhaseTradeBuildPlay); err != nil {
		return err
	}
	if gs.Players[a.Player].PlayedDevCardThisTurn {
		return illegalf(ErrCardUnavailable, "already played a development card this turn")
	}
	if !gs.CanPlayDevCard(a.Player, card) {
		return illegalf(ErrCardUnavailable, "no playable %s card", card)
	}
	return nil
}
