package agent

import (
	"testing"

	"catan/game"

	"github.com/stretchr/testify/require"
)

func TestMCTSAgentPlaysLegally(t *testing.T) {
	gs := newGame(t, 9)
	a := NewMCTSAgent(10, WithEpisodes(30), WithCutoff(20))

	for step := 0; step < 30 && gs.Phase != game.PhaseGameOver; step++ {
		action, err := a.ChooseAction(gs)
		require.NoError(t, err)
		require.NoError(t, gs.Validate(action), "step %d returned %s", step, action.Type)
		gs, err = gs.Apply(action)
		require.NoError(t, err)
	}
}

func TestMCTSAgentShortCircuitsForcedMoves(t *testing.T) {
	gs := newGame(t, 9)
	// PRE_GAME offers exactly one action; no search should be needed to
	// return it.
	a := NewMCTSAgent(1, WithEpisodes(1))
	action, err := a.ChooseAction(gs)
	require.NoError(t, err)
	require.Equal(t, game.StartGame, action.Type)
}

func TestMCTSAgentDeterministicBySeed(t *testing.T) {
	pick := func() game.Action {
		gs := newGame(t, 9)
		gs, err := gs.Apply(game.NewStartGame(0))
		require.NoError(t, err)
		a := NewMCTSAgent(4, WithEpisodes(50), WithCutoff(15))
		action, err := a.ChooseAction(gs)
		require.NoError(t, err)
		return action
	}
	require.Equal(t, pick(), pick())
}

func TestMCTSAgentReportsGameOver(t *testing.T) {
	gs := newGame(t, 9)
	gs.Phase = game.PhaseGameOver
	_, err := NewMCTSAgent(1).ChooseAction(gs)
	require.ErrorIs(t, err, ErrNoActions)
}
