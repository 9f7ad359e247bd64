package engine

import (
	"errors"
	"fmt"

	"catan/agent"
	"catan/game"

	"github.com/rs/zerolog/log"
)

// MaxMoves caps runaway games between weak agents.
const MaxMoves = 10000

// Result summarizes a finished (or capped) game.
type Result struct {
	Winner     string
	WinnerID   int
	TotalMoves int
	TurnNumber int
	Final      *game.GameState
}

// Engine drives one local game: each seat's agent is asked for an action
// whenever that seat is the one to act, and the reducer arbitrates.
type Engine struct {
	State  *game.GameState
	Agents []agent.Agent
}

// NewLocal pairs a fresh seeded game with one agent per seat.
func NewLocal(names []string, agents []agent.Agent, seed uint64) (*Engine, error) {
	if len(names) != len(agents) {
		return nil, errors.New("player names and agents must pair up")
	}
	state, err := game.NewGameState(names, seed)
	if err != nil {
		return nil, err
	}
	return &Engine{State: state, Agents: agents}, nil
}

// Run plays until a winner or the move cap. The final state replaces
// e.State, so a capped game can be inspected or resumed.
func (e *Engine) Run() (Result, error) {
	log.Info().Uint64("seed", e.State.Seed).Int("players", e.State.PlayerCount()).
		Msg("game starting")

	moves := 0
	for e.State.Phase != game.PhaseGameOver && moves < MaxMoves {
		seat := e.State.ActingPlayer()
		action, err := e.Agents[seat].ChooseAction(e.State)
		if err != nil {
			return Result{}, fmt.Errorf("agent for seat %d: %w", seat, err)
		}

		next, err := e.State.Apply(action)
		if err != nil {
			return Result{}, fmt.Errorf("agent for seat %d played %s: %w", seat, action.Type, err)
		}
		e.State = next
		moves++
	}

	result := Result{
		Winner:     e.State.Winner(),
		WinnerID:   e.State.WinnerID,
		TotalMoves: moves,
		TurnNumber: e.State.TurnNumber,
		Final:      e.State,
	}
	if result.Winner == "" {
		log.Warn().Int("moves", moves).Msg("game stopped at move cap without a winner")
	} else {
		log.Info().Str("winner", result.Winner).Int("moves", moves).
			Int("turns", result.TurnNumber).Msg("game over")
	}
	return result, nil
}
