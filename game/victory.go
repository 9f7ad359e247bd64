package game

import "fmt"

// VictoryPoints tallies a player's score: buildings (settlement 1, city 2),
// award bonuses (2 each) and victory point cards, including newly bought
// ones.
func (gs *GameState) VictoryPoints(player int) int {
	vp := 0
	for _, b := range gs.Buildings {
		if b.Kind == NoBuilding || b.Owner != player {
			continue
		}
		if b.Kind == City {
			vp += 2
		} else {
			vp++
		}
	}

	if gs.LongestRoadPlayer == player {
		vp += 2
	}
	if gs.LargestArmyPlayer == player {
		vp += 2
	}

	for _, c := range gs.Players[player].DevCards {
		if c == VictoryPointCard {
			vp++
		}
	}
	for _, c := range gs.Players[player].NewDevCards {
		if c == VictoryPointCard {
			vp++
		}
	}
	return vp
}

// checkGameOver ends the game if the current player has reached the win
// threshold. It is called only when that player ends their turn: crossing the
// threshold during an opponent's turn never ends the game.
func (gs *GameState) checkGameOver() {
	if gs.VictoryPoints(gs.CurrentPlayer) < VPToWin {
		return
	}
	gs.Phase = PhaseGameOver
	gs.WinnerID = gs.CurrentPlayer
	gs.logEvent(gs.CurrentPlayer, EndTurn,
		fmt.Sprintf("%s wins with %d points", gs.Players[gs.CurrentPlayer].Name, gs.VictoryPoints(gs.CurrentPlayer)))
}
