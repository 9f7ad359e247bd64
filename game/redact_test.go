package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactForHidesHiddenInformation(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 6)
	require.NoError(t, err)
	gs.Players[0].DevCards = []DevCard{Knight, VictoryPointCard}
	gs.Players[1].DevCards = []DevCard{Monopoly}
	gs.Players[1].NewDevCards = []DevCard{Knight}

	view := gs.RedactFor(0)

	require.Equal(t, []DevCard{Knight, VictoryPointCard}, view.Players[0].DevCards,
		"the viewer sees their own cards")
	require.Equal(t, []DevCard{CardHidden}, view.Players[1].DevCards)
	require.Equal(t, []DevCard{CardHidden}, view.Players[1].NewDevCards)
	require.Empty(t, view.Players[2].DevCards)

	require.Len(t, view.DevDeck, len(gs.DevDeck), "deck size is public")
	for _, c := range view.DevDeck {
		require.Equal(t, CardHidden, c, "deck order is not")
	}

	// Redaction never leaks back into the source state.
	require.Equal(t, []DevCard{Monopoly}, gs.Players[1].DevCards)
	require.NotEqual(t, CardHidden, gs.DevDeck[0])
}

func TestRedactKeepsPublicState(t *testing.T) {
	gs, err := NewGameState([]string{"a", "b", "c"}, 6)
	require.NoError(t, err)
	gs.Players[1].Hand = Hand{2, 0, 1, 0, 0}
	gs.Buildings[4] = Building{Kind: Settlement, Owner: 1}

	view := gs.RedactFor(0)
	require.Equal(t, gs.Players[1].Hand, view.Players[1].Hand,
		"resource counts are public")
	require.Equal(t, gs.Buildings, view.Buildings)
	require.Equal(t, gs.Terrains, view.Terrains)
	require.Equal(t, gs.Numbers, view.Numbers)
}
