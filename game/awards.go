package game

// LongestRoadLengthFor is the longest simple path (by edge count) through the
// player's roads. Traversal may revisit vertices but never an edge, and stops
// at any vertex occupied by an opposing building: the edge leading in still
// counts, the search does not continue past it.
func (gs *GameState) LongestRoadLengthFor(player int) int {
	owned := make([]bool, gs.Topology.EdgeCount)
	any := false
	for eid, owner := range gs.Roads {
		if owner == player {
			owned[eid] = true
			any = true
		}
	}
	if !any {
		return 0
	}

	starts := make(map[int]struct{})
	for eid := range gs.Roads {
		if owned[eid] {
			ep := gs.Topology.EdgeEndpoints[eid]
			starts[ep[0]] = struct{}{}
			starts[ep[1]] = struct{}{}
		}
	}

	visited := make([]bool, gs.Topology.EdgeCount)
	max := 0
	for sv := range starts {
		if l := gs.roadDFS(player, owned, visited, sv); l > max {
			max = l
		}
	}
	return max
}

func (gs *GameState) roadDFS(player int, owned, visited []bool, vertex int) int {
	best := 0
	for _, eid := range gs.Topology.VertexAdjacentEdges[vertex] {
		if !owned[eid] || visited[eid] {
			continue
		}
		next := gs.Topology.OtherEndpoint(eid, vertex)

		b := gs.Buildings[next]
		blocked := b.Kind != NoBuilding && b.Owner != player

		visited[eid] = true
		length := 1
		if !blocked {
			length += gs.roadDFS(player, owned, visited, next)
		}
		visited[eid] = false

		if length > best {
			best = length
		}
	}
	return best
}

// updateLongestRoad recomputes the longest-road award. The holder changes
// only when strictly exceeded (a tie leaves the incumbent). If the incumbent
// drops below the minimum, the award goes to the best remaining qualifier or
// clears.
func (gs *GameState) updateLongestRoad() {
	holder := gs.LongestRoadPlayer
	length := gs.LongestRoadLength

	for pid := range gs.Players {
		l := gs.LongestRoadLengthFor(pid)
		if l < MinLongestRoad {
			continue
		}
		if holder == NoPlayer || l > length {
			holder = pid
			length = l
		}
	}

	if holder != NoPlayer {
		if gs.LongestRoadLengthFor(holder) < MinLongestRoad {
			holder = NoPlayer
			length = 0
			for pid := range gs.Players {
				l := gs.LongestRoadLengthFor(pid)
				if l >= MinLongestRoad && l > length {
					holder = pid
					length = l
				}
			}
		}
	}

	gs.LongestRoadPlayer = holder
	gs.LongestRoadLength = length
}

// updateLargestArmy applies the same strict-exceed rule to knights played.
func (gs *GameState) updateLargestArmy() {
	holder := gs.LargestArmyPlayer
	size := gs.LargestArmySize

	for pid := range gs.Players {
		knights := gs.Players[pid].KnightsPlayed
		if knights < MinLargestArmy {
			continue
		}
		if holder == NoPlayer || knights > size {
			holder = pid
			size = knights
		}
	}

	gs.LargestArmyPlayer = holder
	gs.LargestArmySize = size
}
