package game

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is the root of every rule rejection raised by the reducer.
// The wrapped message carries the human-readable reason for the UI layer.
var ErrIllegalAction = errors.New("illegal action")

// Rule rejection categories; all wrap ErrIllegalAction.
var (
	ErrWrongPhase            = fmt.Errorf("%w: wrong phase", ErrIllegalAction)
	ErrNotYourTurn           = fmt.Errorf("%w: not your turn", ErrIllegalAction)
	ErrInvalidTarget         = fmt.Errorf("%w: invalid target", ErrIllegalAction)
	ErrInsufficientResources = fmt.Errorf("%w: insufficient resources", ErrIllegalAction)
	ErrBankEmpty             = fmt.Errorf("%w: bank cannot supply", ErrIllegalAction)
	ErrNoPiecesLeft          = fmt.Errorf("%w: no pieces remaining", ErrIllegalAction)
	ErrDeckEmpty             = fmt.Errorf("%w: development deck is empty", ErrIllegalAction)
	ErrCardUnavailable       = fmt.Errorf("%w: card not playable", ErrIllegalAction)
	ErrTradePending          = fmt.Errorf("%w: a trade offer is pending", ErrIllegalAction)
	ErrNoTradePending        = fmt.Errorf("%w: no trade offer is pending", ErrIllegalAction)
	ErrGameOver              = fmt.Errorf("%w: game is over", ErrIllegalAction)
)

// ErrPlayerCount is the construction-time failure for invalid player counts.
// It is not a rule rejection; no state exists when it is raised.
var ErrPlayerCount = errors.New("player count must be 3 or 4")

// illegalf wraps a rejection category with a specific reason.
func illegalf(category error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{category}, args...)...)
}
