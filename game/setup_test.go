package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupOrder(t *testing.T) {
	require.Equal(t, []int{0, 1, 2, 2, 1, 0}, SetupOrder(3))
	require.Equal(t, []int{0, 1, 2, 3, 3, 2, 1, 0}, SetupOrder(4))
}

func TestStartGameEntersSetup(t *testing.T) {
	gs := newStartedGame(t, 4, 21)
	require.Equal(t, PhaseSetupPlaceSettlement, gs.Phase)
	require.Equal(t, 0, gs.CurrentPlayer)
}

func TestSetupDraftFullWalk(t *testing.T) {
	gs := newStartedGame(t, 4, 21)
	order := SetupOrder(4)

	for slot, pid := range order {
		require.Equal(t, PhaseSetupPlaceSettlement, gs.Phase, "slot %d", slot)
		require.Equal(t, pid, gs.CurrentPlayer, "slot %d", slot)

		settle := gs.LegalActions()
		require.NotEmpty(t, settle, "slot %d has settlement options", slot)
		next, err := gs.Apply(settle[0])
		require.NoError(t, err)

		require.Equal(t, PhaseSetupPlaceRoad, next.Phase)
		roads := next.LegalActions()
		require.NotEmpty(t, roads, "slot %d has road options", slot)
		for _, a := range roads {
			require.True(t,
				next.Topology.EdgeEndpoints[a.Edge][0] == next.LastPlacedVertex ||
					next.Topology.EdgeEndpoints[a.Edge][1] == next.LastPlacedVertex,
				"setup road must touch the fresh settlement")
		}
		gs, err = next.Apply(roads[0])
		require.NoError(t, err)
	}

	require.Equal(t, PhaseRollDice, gs.Phase, "draft complete")
	require.Equal(t, 0, gs.CurrentPlayer)
	require.Equal(t, 1, gs.TurnNumber)

	for pid, p := range gs.Players {
		require.Equal(t, MaxSettlements-2, p.SettlementsLeft, "player %d", pid)
		require.Equal(t, MaxRoads-2, p.RoadsLeft, "player %d", pid)
	}
}

func TestSetupSecondSettlementGrantsResources(t *testing.T) {
	gs := newStartedGame(t, 3, 9)

	// Walk the first pass; nobody receives anything yet.
	for i := 0; i < 3; i++ {
		gs = placeFirstLegal(t, gs)
		require.Zero(t, gs.Players[gs.CurrentPlayer].Hand.Total(),
			"no resources during the first pass")
	}

	// Second pass: each settlement pays one card per adjacent producing hex.
	for i := 0; i < 3; i++ {
		pid := gs.CurrentPlayer
		settle := gs.LegalActions()[0]
		next, err := gs.Apply(settle)
		require.NoError(t, err)

		want := 0
		for _, hid := range next.Topology.VertexAdjacentHexes[settle.Vertex] {
			if _, ok := next.Terrains[hid].Produces(); ok {
				want++
			}
		}
		require.Equal(t, want, next.Players[pid].Hand.Total(), "player %d starting hand", pid)

		gs, err = next.Apply(next.LegalActions()[0])
		require.NoError(t, err)
	}
}

func TestSetupDistanceRule(t *testing.T) {
	gs := newStartedGame(t, 3, 9)

	first := gs.LegalActions()[0]
	gs, err := gs.Apply(first)
	require.NoError(t, err)
	gs, err = gs.Apply(gs.LegalActions()[0])
	require.NoError(t, err)

	// The occupied vertex and all its neighbors are now off limits.
	banned := append([]int{first.Vertex}, gs.Topology.VertexAdjacentVertices[first.Vertex]...)
	for _, a := range gs.LegalActions() {
		require.NotContains(t, banned, a.Vertex)
	}
	for _, vid := range banned {
		_, err := gs.Apply(NewPlaceSetupSettlement(gs.CurrentPlayer, vid))
		require.ErrorIs(t, err, ErrIllegalAction)
	}
}

// newStartedGame builds a game past the PRE_GAME gate.
func newStartedGame(t *testing.T, players int, seed uint64) *GameState {
	t.Helper()
	names := []string{"alice", "bob", "carol", "dave"}[:players]
	gs, err := NewGameState(names, seed)
	require.NoError(t, err)
	gs, err = gs.Apply(NewStartGame(0))
	require.NoError(t, err)
	return gs
}

// placeFirstLegal plays the first legal settlement and road for the seat to
// act, returning the state after both placements.
func placeFirstLegal(t *testing.T, gs *GameState) *GameState {
	t.Helper()
	gs, err := gs.Apply(gs.LegalActions()[0])
	require.NoError(t, err)
	gs, err = gs.Apply(gs.LegalActions()[0])
	require.NoError(t, err)
	return gs
}
