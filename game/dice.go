package game

import "fmt"

// applyRollDice rolls (or takes the caller's override), then either routes
// through discard/robber handling on a 7 or distributes production.
func (gs *GameState) applyRollDice(dice [2]int) {
	d1, d2 := dice[0], dice[1]
	if d1 == 0 || d2 == 0 {
		d1 = gs.rng.Die()
		d2 = gs.rng.Die()
	}
	gs.LastRoll = [2]int{d1, d2}
	total := d1 + d2
	gs.logEvent(gs.CurrentPlayer, RollDice, fmt.Sprintf("rolled %d (%d+%d)", total, d1, d2))

	if total == 7 {
		var owing []int
		for pid := range gs.Players {
			if gs.Players[pid].Hand.Total() > DiscardThreshold {
				owing = append(owing, pid)
			}
		}
		if len(owing) > 0 {
			gs.PendingDiscards = owing
			gs.Phase = PhaseDiscard
		} else {
			gs.Phase = PhaseMoveRobber
		}
		return
	}

	gs.distributeResources(total)
	gs.Phase = PhaseTradeBuildPlay
}

// distributeResources pays out every non-robbered hex whose token matches the
// roll. Shortage is judged per hex: if the bank cannot cover a hex's total
// demand for its resource, that hex pays nobody, while other hexes still pay.
func (gs *GameState) distributeResources(total int) {
	for hid := range gs.Terrains {
		if gs.Numbers[hid] != total || hid == gs.RobberHex {
			continue
		}
		resource, ok := gs.Terrains[hid].Produces()
		if !ok {
			continue
		}

		demand := 0
		playerDemand := make(map[int]int)
		for _, vid := range gs.Topology.HexVertices[hid] {
			b := gs.Buildings[vid]
			if b.Kind == NoBuilding {
				continue
			}
			amount := 1
			if b.Kind == City {
				amount = 2
			}
			demand += amount
			playerDemand[b.Owner] += amount
		}

		if demand == 0 || demand > gs.Bank[resource] {
			continue
		}
		for pid, amount := range playerDemand {
			gs.Players[pid].Hand[resource] += amount
			gs.Bank[resource] -= amount
		}
	}
}

// DiscardCount is the number of cards a player must discard on a 7.
func DiscardCount(hand Hand) int {
	return hand.Total() / 2
}

// applyDiscard removes the chosen cards to the bank and pops the discard
// queue, entering MOVE_ROBBER once the queue drains.
func (gs *GameState) applyDiscard(resources Hand) {
	pid := gs.PendingDiscards[0]
	gs.Players[pid].Hand = gs.Players[pid].Hand.Sub(resources)
	gs.Bank = gs.Bank.Add(resources)
	gs.logEvent(pid, DiscardResources, fmt.Sprintf("discarded %d cards", resources.Total()))

	gs.PendingDiscards = gs.PendingDiscards[1:]
	if len(gs.PendingDiscards) == 0 {
		gs.Phase = PhaseMoveRobber
	}
}
