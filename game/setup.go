package game

// SetupOrder is the snake draft through all seats and back, e.g. for 4
// players: 0,1,2,3,3,2,1,0.
func SetupOrder(playerCount int) []int {
	order := make([]int, 0, playerCount*2)
	for i := 0; i < playerCount; i++ {
		order = append(order, i)
	}
	for i := playerCount - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}

// ValidSetupSettlementVertices are the empty vertices with no adjacent
// building. Setup placement has no connectivity requirement.
func (gs *GameState) ValidSetupSettlementVertices() []int {
	var valid []int
	for vid := 0; vid < gs.Topology.VertexCount; vid++ {
		if gs.Buildings[vid].Kind != NoBuilding {
			continue
		}
		if gs.hasAdjacentBuilding(vid) {
			continue
		}
		valid = append(valid, vid)
	}
	return valid
}

// ValidSetupRoadEdges are the unoccupied edges touching the settlement just
// placed by the drafting player.
func (gs *GameState) ValidSetupRoadEdges() []int {
	if gs.LastPlacedVertex == NoVertex {
		return nil
	}
	var valid []int
	for _, eid := range gs.Topology.VertexAdjacentEdges[gs.LastPlacedVertex] {
		if gs.Roads[eid] == NoPlayer {
			valid = append(valid, eid)
		}
	}
	return valid
}

func (gs *GameState) hasAdjacentBuilding(vid int) bool {
	for _, adj := range gs.Topology.VertexAdjacentVertices[vid] {
		if gs.Buildings[adj].Kind != NoBuilding {
			return true
		}
	}
	return false
}

// applySetupSettlement places a draft settlement. The reverse-pass settlement
// also grants one resource per adjacent non-desert hex, drawn from the bank.
func (gs *GameState) applySetupSettlement(vertex int) {
	pid := gs.CurrentPlayer
	gs.Buildings[vertex] = Building{Kind: Settlement, Owner: pid}
	gs.Players[pid].SettlementsLeft--

	if gs.SetupRound == 1 {
		for _, hid := range gs.Topology.VertexAdjacentHexes[vertex] {
			if res, ok := gs.Terrains[hid].Produces(); ok {
				gs.Players[pid].Hand[res]++
				gs.Bank[res]--
			}
		}
	}

	gs.LastPlacedVertex = vertex
	gs.Phase = PhaseSetupPlaceRoad
	gs.logEvent(pid, PlaceSetupSettlement, "settlement placed")
}

// applySetupRoad places the draft road and advances the snake order, entering
// ROLL_DICE once every slot has placed.
func (gs *GameState) applySetupRoad(edge int) {
	pid := gs.CurrentPlayer
	gs.Roads[edge] = pid
	gs.Players[pid].RoadsLeft--
	gs.logEvent(pid, PlaceSetupRoad, "road placed")

	order := SetupOrder(gs.PlayerCount())
	next := gs.SetupIndex + 1

	if next >= len(order) {
		gs.Phase = PhaseRollDice
		gs.CurrentPlayer = 0
		gs.LastPlacedVertex = NoVertex
		gs.TurnNumber = 1
		return
	}

	gs.CurrentPlayer = order[next]
	gs.SetupIndex = next
	if next >= gs.PlayerCount() {
		gs.SetupRound = 1
	}
	gs.Phase = PhaseSetupPlaceSettlement
	gs.LastPlacedVertex = NoVertex
}
