package game

import "fmt"

// vertexAccessible reports whether player can extend a road through vertex:
// the player owns a building there, or owns a road reaching it and no
// opposing building occupies it. An opposing building blocks traversal but
// not the edge terminating at it, which is handled by the caller checking
// either endpoint.
func (gs *GameState) vertexAccessible(player, vertex int) bool {
	b := gs.Buildings[vertex]
	if b.Kind != NoBuilding {
		return b.Owner == player
	}
	for _, eid := range gs.Topology.VertexAdjacentEdges[vertex] {
		if gs.Roads[eid] == player {
			return true
		}
	}
	return false
}

// validRoadEdge checks emptiness and accessibility of one edge for player.
func (gs *GameState) validRoadEdge(player, edge int) bool {
	if edge < 0 || edge >= gs.Topology.EdgeCount {
		return false
	}
	if gs.Roads[edge] != NoPlayer {
		return false
	}
	ep := gs.Topology.EdgeEndpoints[edge]
	return gs.vertexAccessible(player, ep[0]) || gs.vertexAccessible(player, ep[1])
}

// ValidRoadEdgesFree enumerates legal road edges ignoring resource cost
// (road-building card placement).
func (gs *GameState) ValidRoadEdgesFree(player int) []int {
	if gs.Players[player].RoadsLeft <= 0 {
		return nil
	}
	var valid []int
	for eid := 0; eid < gs.Topology.EdgeCount; eid++ {
		if gs.validRoadEdge(player, eid) {
			valid = append(valid, eid)
		}
	}
	return valid
}

// ValidRoadEdges enumerates legal road purchases for player.
func (gs *GameState) ValidRoadEdges(player int) []int {
	if !gs.Players[player].Hand.Covers(RoadCost) {
		return nil
	}
	return gs.ValidRoadEdgesFree(player)
}

// validSettlementVertex checks the distance rule and road connectivity for a
// main-game settlement at vid.
func (gs *GameState) validSettlementVertex(player, vid int) bool {
	if vid < 0 || vid >= gs.Topology.VertexCount {
		return false
	}
	if gs.Buildings[vid].Kind != NoBuilding {
		return false
	}
	if gs.hasAdjacentBuilding(vid) {
		return false
	}
	for _, eid := range gs.Topology.VertexAdjacentEdges[vid] {
		if gs.Roads[eid] == player {
			return true
		}
	}
	return false
}

// ValidSettlementVertices enumerates legal settlement purchases for player.
func (gs *GameState) ValidSettlementVertices(player int) []int {
	p := gs.Players[player]
	if p.SettlementsLeft <= 0 || !p.Hand.Covers(SettlementCost) {
		return nil
	}
	var valid []int
	for vid := 0; vid < gs.Topology.VertexCount; vid++ {
		if gs.validSettlementVertex(player, vid) {
			valid = append(valid, vid)
		}
	}
	return valid
}

// ValidCityVertices enumerates the player's own settlements upgradable to a
// city.
func (gs *GameState) ValidCityVertices(player int) []int {
	p := gs.Players[player]
	if p.CitiesLeft <= 0 || !p.Hand.Covers(CityCost) {
		return nil
	}
	var valid []int
	for vid := 0; vid < gs.Topology.VertexCount; vid++ {
		b := gs.Buildings[vid]
		if b.Kind == Settlement && b.Owner == player {
			valid = append(valid, vid)
		}
	}
	return valid
}

// placeRoad is the shared effect of buying a road and placing a free one.
func (gs *GameState) placeRoad(player, edge int, free bool) {
	gs.Roads[edge] = player
	gs.Players[player].RoadsLeft--
	if !free {
		gs.Players[player].Hand = gs.Players[player].Hand.Sub(RoadCost)
		gs.Bank = gs.Bank.Add(RoadCost)
	}
}

func (gs *GameState) applyBuildRoad(edge int) {
	pid := gs.CurrentPlayer
	gs.placeRoad(pid, edge, false)
	gs.logEvent(pid, BuildRoad, fmt.Sprintf("road built on edge %d", edge))
}

func (gs *GameState) applyBuildSettlement(vertex int) {
	pid := gs.CurrentPlayer
	gs.Buildings[vertex] = Building{Kind: Settlement, Owner: pid}
	gs.Players[pid].SettlementsLeft--
	gs.Players[pid].Hand = gs.Players[pid].Hand.Sub(SettlementCost)
	gs.Bank = gs.Bank.Add(SettlementCost)
	gs.logEvent(pid, BuildSettlement, fmt.Sprintf("settlement built on vertex %d", vertex))
}

// applyBuildCity upgrades the player's settlement, returning the settlement
// piece to supply.
func (gs *GameState) applyBuildCity(vertex int) {
	pid := gs.CurrentPlayer
	gs.Buildings[vertex] = Building{Kind: City, Owner: pid}
	gs.Players[pid].CitiesLeft--
	gs.Players[pid].SettlementsLeft++
	gs.Players[pid].Hand = gs.Players[pid].Hand.Sub(CityCost)
	gs.Bank = gs.Bank.Add(CityCost)
	gs.logEvent(pid, BuildCity, fmt.Sprintf("city built on vertex %d", vertex))
}
