package agent

import (
	"catan/game"
)

type randomAgent struct {
	rng *game.RNG
}

// NewRandomAgent plays a uniformly random legal action. Useful as a baseline
// opponent and for smoke-testing the rules.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: game.NewRNG(seed)}
}

func (a *randomAgent) ChooseAction(gs *game.GameState) (game.Action, error) {
	actions := gs.LegalActions()
	if len(actions) == 0 {
		return game.Action{}, ErrNoActions
	}
	return actions[a.rng.Intn(len(actions))], nil
}
