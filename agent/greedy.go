package agent

import (
	"catan/game"
)

type greedyAgent struct {
	rng *game.RNG
}

// NewGreedyAgent picks the action whose successor state scores best under
// the position heuristic, breaking ties uniformly at random.
func NewGreedyAgent(seed uint64) Agent {
	return &greedyAgent{rng: game.NewRNG(seed)}
}

func (a *greedyAgent) ChooseAction(gs *game.GameState) (game.Action, error) {
	actions := gs.LegalActions()
	if len(actions) == 0 {
		return game.Action{}, ErrNoActions
	}

	player := gs.ActingPlayer()
	best := []game.Action{}
	bestScore := -2.0
	for _, action := range actions {
		next, err := gs.Apply(action)
		if err != nil {
			return game.Action{}, err
		}
		score := game.EvaluatePosition(next, player)
		switch {
		case score > bestScore:
			bestScore = score
			best = best[:0]
			best = append(best, action)
		case score == bestScore:
			best = append(best, action)
		}
	}
	return best[a.rng.Intn(len(best))], nil
}
