package game

import "fmt"

// CanBuyDevCard checks deck stock and the card cost.
func (gs *GameState) CanBuyDevCard(player int) bool {
	return len(gs.DevDeck) > 0 && gs.Players[player].Hand.Covers(DevCardCost)
}

// CanPlayDevCard checks the one-per-turn limit and that the playable pool
// holds the card. Victory point cards are never playable.
func (gs *GameState) CanPlayDevCard(player int, card DevCard) bool {
	if card == VictoryPointCard {
		return false
	}
	if gs.Players[player].PlayedDevCardThisTurn {
		return false
	}
	for _, c := range gs.Players[player].DevCards {
		if c == card {
			return true
		}
	}
	return false
}

func removeDevCard(cards []DevCard, card DevCard) []DevCard {
	for i, c := range cards {
		if c == card {
			out := make([]DevCard, 0, len(cards)-1)
			out = append(out, cards[:i]...)
			return append(out, cards[i+1:]...)
		}
	}
	return cards
}

// applyBuyDevCard draws from the deck into the quarantined new-card pool.
func (gs *GameState) applyBuyDevCard() {
	pid := gs.CurrentPlayer
	card := gs.DevDeck[len(gs.DevDeck)-1]
	gs.DevDeck = gs.DevDeck[:len(gs.DevDeck)-1]

	gs.Players[pid].Hand = gs.Players[pid].Hand.Sub(DevCardCost)
	gs.Bank = gs.Bank.Add(DevCardCost)
	gs.Players[pid].NewDevCards = append(gs.Players[pid].NewDevCards, card)
	gs.logEvent(pid, BuyDevCard, "development card bought")
}

// applyPlayKnight moves straight into robber movement.
func (gs *GameState) applyPlayKnight() {
	pid := gs.CurrentPlayer
	p := &gs.Players[pid]
	p.DevCards = removeDevCard(p.DevCards, Knight)
	p.KnightsPlayed++
	p.PlayedDevCardThisTurn = true
	gs.logEvent(pid, PlayKnight, fmt.Sprintf("knight played (%d total)", p.KnightsPlayed))

	gs.updateLargestArmy()
	gs.Phase = PhaseMoveRobber
}

// applyPlayRoadBuilding grants up to two free roads, fewer if the player is
// short on pieces. With no pieces left the card is still consumed and the
// turn stays in TRADE_BUILD_PLAY.
func (gs *GameState) applyPlayRoadBuilding() {
	pid := gs.CurrentPlayer
	p := &gs.Players[pid]
	p.DevCards = removeDevCard(p.DevCards, RoadBuilding)
	p.PlayedDevCardThisTurn = true
	gs.logEvent(pid, PlayRoadBuilding, "road building played")

	roads := p.RoadsLeft
	if roads > 2 {
		roads = 2
	}
	if roads == 0 {
		return
	}
	gs.RoadBuildingLeft = roads
	gs.Phase = PhaseRoadBuildingPlace
}

// applyPlaceRoadBuildingRoad places one free road, ending the side phase when
// the grant is used up or no legal edge remains.
func (gs *GameState) applyPlaceRoadBuildingRoad(edge int) {
	pid := gs.CurrentPlayer
	gs.placeRoad(pid, edge, true)
	gs.RoadBuildingLeft--
	gs.logEvent(pid, PlaceRoadBuildingRoad, fmt.Sprintf("free road on edge %d", edge))

	if gs.RoadBuildingLeft <= 0 {
		gs.Phase = PhaseTradeBuildPlay
		return
	}
	if len(gs.ValidRoadEdgesFree(pid)) == 0 {
		gs.RoadBuildingLeft = 0
		gs.Phase = PhaseTradeBuildPlay
	}
}

func (gs *GameState) applyPlayYearOfPlenty() {
	pid := gs.CurrentPlayer
	p := &gs.Players[pid]
	p.DevCards = removeDevCard(p.DevCards, YearOfPlenty)
	p.PlayedDevCardThisTurn = true
	gs.logEvent(pid, PlayYearOfPlenty, "year of plenty played")
	gs.Phase = PhaseYearOfPlentyPick
}

// applyPickYearOfPlenty grants the two picked resources from the bank.
func (gs *GameState) applyPickYearOfPlenty(picks Hand) {
	pid := gs.CurrentPlayer
	gs.Players[pid].Hand = gs.Players[pid].Hand.Add(picks)
	gs.Bank = gs.Bank.Sub(picks)
	gs.logEvent(pid, PickYearOfPlentyResources, "two resources drawn from bank")
	gs.Phase = PhaseTradeBuildPlay
}

func (gs *GameState) applyPlayMonopoly() {
	pid := gs.CurrentPlayer
	p := &gs.Players[pid]
	p.DevCards = removeDevCard(p.DevCards, Monopoly)
	p.PlayedDevCardThisTurn = true
	gs.logEvent(pid, PlayMonopoly, "monopoly played")
	gs.Phase = PhaseMonopolyPick
}

// applyPickMonopoly zeroes the chosen resource across all other hands and
// transfers the total to the actor.
func (gs *GameState) applyPickMonopoly(resource Resource) {
	pid := gs.CurrentPlayer
	stolen := 0
	for i := range gs.Players {
		if i == pid {
			continue
		}
		stolen += gs.Players[i].Hand[resource]
		gs.Players[i].Hand[resource] = 0
	}
	gs.Players[pid].Hand[resource] += stolen
	gs.logEvent(pid, PickMonopolyResource, fmt.Sprintf("monopolized %d %s", stolen, resource))
	gs.Phase = PhaseTradeBuildPlay
}
