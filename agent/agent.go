package agent

import (
	"fmt"

	"catan/game"
)

// Agent produces one legal action for the state it is shown. Implementations
// keep their own randomness so concurrent games stay independent.
type Agent interface {
	ChooseAction(gs *game.GameState) (game.Action, error)
}

// ErrNoActions is returned when a state offers nothing to do, which only
// happens once the game is over.
var ErrNoActions = fmt.Errorf("no legal actions")
