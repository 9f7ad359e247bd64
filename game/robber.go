package game

import "fmt"

// ValidRobberHexes are all hexes except the robber's current one.
func (gs *GameState) ValidRobberHexes() []int {
	hexes := make([]int, 0, len(gs.Terrains)-1)
	for hid := range gs.Terrains {
		if hid != gs.RobberHex {
			hexes = append(hexes, hid)
		}
	}
	return hexes
}

// StealTargets are the owners of buildings on hex that are not the thief and
// hold at least one card.
func (gs *GameState) StealTargets(hex, thief int) []int {
	var targets []int
	for _, vid := range gs.Topology.HexVertices[hex] {
		b := gs.Buildings[vid]
		if b.Kind == NoBuilding || b.Owner == thief {
			continue
		}
		if gs.Players[b.Owner].Hand.Total() == 0 {
			continue
		}
		if !containsInt(targets, b.Owner) {
			targets = append(targets, b.Owner)
		}
	}
	return targets
}

// applyMoveRobber relocates the robber and enters STEAL if anyone can be
// robbed, otherwise returns straight to TRADE_BUILD_PLAY.
func (gs *GameState) applyMoveRobber(hex int) {
	gs.RobberHex = hex
	gs.logEvent(gs.CurrentPlayer, MoveRobber, fmt.Sprintf("robber moved to hex %d", hex))

	if len(gs.StealTargets(hex, gs.CurrentPlayer)) > 0 {
		gs.Phase = PhaseSteal
	} else {
		gs.Phase = PhaseTradeBuildPlay
	}
}

// applySteal takes one random card from the victim. A NoVictim target picks
// uniformly over all eligible victims' held cards via the seeded generator.
func (gs *GameState) applySteal(victim int) {
	thief := gs.CurrentPlayer
	targets := gs.StealTargets(gs.RobberHex, thief)
	if len(targets) == 0 {
		gs.logEvent(thief, StealResource, "nobody to rob")
		gs.Phase = PhaseTradeBuildPlay
		return
	}

	if victim == NoVictim {
		// Weight victims by hand size so every held card is equally likely.
		total := 0
		for _, pid := range targets {
			total += gs.Players[pid].Hand.Total()
		}
		pick := gs.rng.Intn(total)
		for _, pid := range targets {
			n := gs.Players[pid].Hand.Total()
			if pick < n {
				victim = pid
				break
			}
			pick -= n
		}
	}

	hand := gs.Players[victim].Hand
	pick := gs.rng.Intn(hand.Total())
	for _, r := range Resources {
		if pick < hand[r] {
			gs.Players[victim].Hand[r]--
			gs.Players[thief].Hand[r]++
			gs.logEvent(thief, StealResource, fmt.Sprintf("stole from %s", gs.Players[victim].Name))
			break
		}
		pick -= hand[r]
	}

	gs.Phase = PhaseTradeBuildPlay
}
