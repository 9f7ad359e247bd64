package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardComposition(t *testing.T) {
	board := NewBoard(NewRNG(7))

	counts := make(map[Terrain]int)
	for _, terr := range board.Terrains {
		counts[terr]++
	}
	require.Equal(t, 4, counts[Forest])
	require.Equal(t, 3, counts[Hills])
	require.Equal(t, 4, counts[Pasture])
	require.Equal(t, 4, counts[Fields])
	require.Equal(t, 3, counts[Mountains])
	require.Equal(t, 1, counts[Desert])

	require.Equal(t, Desert, board.Terrains[board.DesertHex])
	require.Zero(t, board.Numbers[board.DesertHex], "desert carries no number token")
}

func TestNewBoardNumberTokens(t *testing.T) {
	board := NewBoard(NewRNG(7))

	tokens := make(map[int]int)
	for hid, n := range board.Numbers {
		if hid == board.DesertHex {
			continue
		}
		require.GreaterOrEqual(t, n, 2, "hex %d", hid)
		require.LessOrEqual(t, n, 12, "hex %d", hid)
		require.NotEqual(t, 7, n, "hex %d", hid)
		tokens[n]++
	}
	require.Equal(t, 2, tokens[6])
	require.Equal(t, 2, tokens[8])
	require.Equal(t, 1, tokens[2])
	require.Equal(t, 1, tokens[12])
}

func TestNewBoardHotTokensSeparated(t *testing.T) {
	// Over many seeds, no 6 or 8 may ever land next to another 6 or 8.
	for seed := uint64(0); seed < 25; seed++ {
		board := NewBoard(NewRNG(seed))
		topo := board.Topology
		for h1 := range board.Numbers {
			if board.Numbers[h1] != 6 && board.Numbers[h1] != 8 {
				continue
			}
			for h2 := h1 + 1; h2 < len(board.Numbers); h2++ {
				if board.Numbers[h2] != 6 && board.Numbers[h2] != 8 {
					continue
				}
				require.False(t, topo.HexesAdjacent(h1, h2),
					"seed %d: hot tokens on adjacent hexes %d and %d", seed, h1, h2)
			}
		}
	}
}

func TestNewBoardHarbors(t *testing.T) {
	board := NewBoard(NewRNG(3))

	require.Len(t, board.Harbors, 9)
	kinds := make(map[HarborKind]int)
	for _, h := range board.Harbors {
		kinds[h.Kind]++
		for _, vid := range h.Vertices {
			require.GreaterOrEqual(t, vid, 0)
			require.Less(t, vid, board.Topology.VertexCount)
		}
	}
	require.Equal(t, 4, kinds[HarborGeneric])
	require.Equal(t, 1, kinds[HarborLumber])
	require.Equal(t, 1, kinds[HarborBrick])
	require.Equal(t, 1, kinds[HarborWool])
	require.Equal(t, 1, kinds[HarborGrain])
	require.Equal(t, 1, kinds[HarborOre])
}

func TestNewBoardDeterministic(t *testing.T) {
	a := NewBoard(NewRNG(42))
	b := NewBoard(NewRNG(42))

	require.Equal(t, a.Terrains, b.Terrains)
	require.Equal(t, a.Numbers, b.Numbers)
	require.Equal(t, a.Harbors, b.Harbors)
}
