package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyRejectsWrongActor(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 1)
	require.NoError(t, err)

	_, err = gs.Apply(NewStartGame(1))
	require.ErrorIs(t, err, ErrNotYourTurn)

	_, err = gs.Apply(Action{Player: 7, Type: StartGame})
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestApplyRejectsWrongPhase(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 1)
	require.NoError(t, err)

	_, err = gs.Apply(NewRollDice(0))
	require.ErrorIs(t, err, ErrWrongPhase)
	_, err = gs.Apply(NewEndTurn(0))
	require.ErrorIs(t, err, ErrWrongPhase)
}

func TestApplyLeavesReceiverUntouched(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 1)
	require.NoError(t, err)
	before := gs.Hash()

	next, err := gs.Apply(NewStartGame(0))
	require.NoError(t, err)
	require.NotSame(t, gs, next)
	require.Equal(t, before, gs.Hash(), "the parent state is immutable")
	require.Equal(t, PhasePreGame, gs.Phase)
	require.Equal(t, PhaseSetupPlaceSettlement, next.Phase)
}

func TestEndTurnAdvances(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 1)
	require.NoError(t, err)
	gs.Phase = PhaseTradeBuildPlay
	gs.TurnNumber = 1
	gs.LastRoll = [2]int{3, 4}
	gs.Players[0].NewDevCards = []DevCard{Knight}
	gs.Players[0].PlayedDevCardThisTurn = true

	next, err := gs.Apply(NewEndTurn(0))
	require.NoError(t, err)

	require.Equal(t, 1, next.CurrentPlayer)
	require.Equal(t, 2, next.TurnNumber)
	require.Equal(t, PhaseRollDice, next.Phase)
	require.Equal(t, [2]int{0, 0}, next.LastRoll)
	require.Equal(t, []DevCard{Knight}, next.Players[0].DevCards,
		"new cards become playable")
	require.Empty(t, next.Players[0].NewDevCards)
	require.False(t, next.Players[0].PlayedDevCardThisTurn)

	// Wraps around the table.
	next.Phase = PhaseTradeBuildPlay
	next, err = next.Apply(NewEndTurn(1))
	require.NoError(t, err)
	next.Phase = PhaseTradeBuildPlay
	next, err = next.Apply(NewEndTurn(2))
	require.NoError(t, err)
	require.Equal(t, 0, next.CurrentPlayer)
}

func TestVictoryOnlyAtEndOfTurn(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 1)
	require.NoError(t, err)
	gs.Phase = PhaseTradeBuildPlay
	gs.TurnNumber = 1

	// Ten points for seat 1, but seat 0 is the one ending a turn.
	for i, vid := 0, 0; i < 5; i++ {
		gs.Buildings[vid] = Building{Kind: City, Owner: 1}
		vid += 3
	}
	require.Equal(t, 10, gs.VictoryPoints(1))

	next, err := gs.Apply(NewEndTurn(0))
	require.NoError(t, err)
	require.NotEqual(t, PhaseGameOver, next.Phase,
		"an opponent's points never end the current turn")
	require.Equal(t, NoPlayer, next.WinnerID)

	// When seat 1 ends their own turn, the game closes.
	next.Phase = PhaseTradeBuildPlay
	done, err := next.Apply(NewEndTurn(1))
	require.NoError(t, err)
	require.Equal(t, PhaseGameOver, done.Phase)
	require.Equal(t, 1, done.WinnerID)
	require.Equal(t, "b", done.Winner())

	// Nothing is legal after the game ends.
	require.Empty(t, done.LegalActions())
	_, err = done.Apply(NewEndTurn(2))
	require.ErrorIs(t, err, ErrGameOver)
}

func TestBuildActionsRefreshLongestRoad(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 1)
	require.NoError(t, err)
	gs.Phase = PhaseTradeBuildPlay
	gs.TurnNumber = 1

	path := layRoadChain(t, gs, 0, 0, 4)
	last := path[len(path)-1]
	gs.Buildings[path[0]] = Building{Kind: Settlement, Owner: 0}
	gs.Players[0].Hand = Hand{1, 1, 0, 0, 0}

	target := -1
	for _, eid := range gs.Topology.VertexAdjacentEdges[last] {
		if gs.Roads[eid] == NoPlayer {
			target = eid
			break
		}
	}
	require.NotEqual(t, -1, target)

	next, err := gs.Apply(NewBuildRoad(0, target))
	require.NoError(t, err)
	require.Equal(t, 0, next.LongestRoadPlayer, "fifth road claims the award")
	require.Equal(t, 5, next.LongestRoadLength)
}

func TestRandomWalkPreservesInvariants(t *testing.T) {
	// Long seeded games must conserve every resource against the bank,
	// every piece against its supply, and never violate the distance rule.
	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			gs, err := NewGameState([]string{"a", "b", "c", "d"}, seed)
			require.NoError(t, err)
			walk := NewRNG(seed * 31)

			for step := 0; step < 2000 && gs.Phase != PhaseGameOver; step++ {
				actions := gs.LegalActions()
				require.NotEmpty(t, actions, "step %d in %s", step, gs.Phase)
				gs, err = gs.Apply(actions[walk.Intn(len(actions))])
				require.NoError(t, err, "step %d", step)
				checkConservation(t, gs, step)
			}
		})
	}
}

func checkConservation(t *testing.T, gs *GameState, step int) {
	t.Helper()

	for _, r := range Resources {
		held := gs.Bank[r]
		for _, p := range gs.Players {
			held += p.Hand[r]
		}
		require.Equal(t, BankPerResource, held, "step %d: %s not conserved", step, r)
	}

	settlements := make([]int, gs.PlayerCount())
	cities := make([]int, gs.PlayerCount())
	for _, b := range gs.Buildings {
		switch b.Kind {
		case Settlement:
			settlements[b.Owner]++
		case City:
			cities[b.Owner]++
		}
	}
	roadCounts := make([]int, gs.PlayerCount())
	for _, owner := range gs.Roads {
		if owner != NoPlayer {
			roadCounts[owner]++
		}
	}
	for pid, p := range gs.Players {
		require.Equal(t, MaxSettlements, p.SettlementsLeft+settlements[pid], "step %d: player %d settlement supply", step, pid)
		require.Equal(t, MaxCities, p.CitiesLeft+cities[pid], "step %d: player %d city supply", step, pid)
		require.Equal(t, MaxRoads, p.RoadsLeft+roadCounts[pid], "step %d: player %d road supply", step, pid)
	}

	for vid, b := range gs.Buildings {
		if b.Kind == NoBuilding {
			continue
		}
		for _, adj := range gs.Topology.VertexAdjacentVertices[vid] {
			require.Equal(t, NoBuilding, gs.Buildings[adj].Kind,
				"step %d: vertices %d and %d both occupied", step, vid, adj)
		}
	}
}

func TestLegalActionsAllValid(t *testing.T) {
	// Every enumerated action must pass validation, phase by phase, along a
	// seeded random walk.
	gs, err := NewGameState([]string{"a", "b", "c", "d"}, 77)
	require.NoError(t, err)
	walk := NewRNG(123)

	for step := 0; step < 200 && gs.Phase != PhaseGameOver; step++ {
		actions := gs.LegalActions()
		require.NotEmpty(t, actions, "step %d in %s", step, gs.Phase)
		for _, a := range actions {
			require.NoError(t, gs.Validate(a), "step %d: %s", step, a.Type)
		}
		gs, err = gs.Apply(actions[walk.Intn(len(actions))])
		require.NoError(t, err, "step %d", step)
	}
}
