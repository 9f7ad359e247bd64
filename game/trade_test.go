package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tradeReady(t *testing.T) *GameState {
	t.Helper()
	gs, err := NewGameState([]string{"a", "b", "c"}, 23)
	require.NoError(t, err)
	gs.Phase = PhaseTradeBuildPlay
	gs.TurnNumber = 1
	return gs
}

func TestTradeRatio(t *testing.T) {
	gs := tradeReady(t)
	require.Equal(t, 4, gs.TradeRatio(0, Lumber), "no harbor access")

	var generic, lumber Harbor
	foundG, foundL := false, false
	for _, h := range gs.Harbors {
		if h.Kind == HarborGeneric && !foundG {
			generic, foundG = h, true
		}
		if h.Kind == HarborLumber && !foundL {
			lumber, foundL = h, true
		}
	}
	require.True(t, foundG)
	require.True(t, foundL)

	gs.Buildings[generic.Vertices[0]] = Building{Kind: Settlement, Owner: 0}
	require.Equal(t, 3, gs.TradeRatio(0, Lumber), "generic harbor")
	require.Equal(t, 3, gs.TradeRatio(0, Ore), "generic harbor covers all resources")

	gs.Buildings[lumber.Vertices[0]] = Building{Kind: Settlement, Owner: 0}
	require.Equal(t, 2, gs.TradeRatio(0, Lumber), "specific harbor")
	require.Equal(t, 3, gs.TradeRatio(0, Ore), "specific harbor is per resource")

	require.Equal(t, 4, gs.TradeRatio(1, Lumber), "harbors are per player")
}

func TestMaritimeTrade(t *testing.T) {
	gs := tradeReady(t)
	gs.Players[0].Hand = Hand{4, 0, 0, 0, 0}

	next, err := gs.Apply(NewMaritimeTrade(0, Lumber, Ore))
	require.NoError(t, err)

	require.Zero(t, next.Players[0].Hand[Lumber])
	require.Equal(t, 1, next.Players[0].Hand[Ore])
	require.Equal(t, BankPerResource+4, next.Bank[Lumber])
	require.Equal(t, BankPerResource-1, next.Bank[Ore])
	require.Equal(t, PhaseTradeBuildPlay, next.Phase, "trading does not end the turn")

	t.Run("below ratio is rejected", func(t *testing.T) {
		cp := gs.Copy()
		cp.Players[0].Hand = Hand{3, 0, 0, 0, 0}
		_, err := cp.Apply(NewMaritimeTrade(0, Lumber, Ore))
		require.ErrorIs(t, err, ErrInsufficientResources)
	})

	t.Run("same resource both ways is rejected", func(t *testing.T) {
		_, err := gs.Apply(NewMaritimeTrade(0, Lumber, Lumber))
		require.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("empty bank is rejected", func(t *testing.T) {
		cp := gs.Copy()
		cp.Bank[Ore] = 0
		_, err := cp.Apply(NewMaritimeTrade(0, Lumber, Ore))
		require.ErrorIs(t, err, ErrBankEmpty)
	})
}

func TestDomesticTradeLifecycle(t *testing.T) {
	gs := tradeReady(t)
	gs.Players[0].Hand = Hand{2, 0, 0, 0, 0}
	gs.Players[1].Hand = Hand{0, 0, 0, 1, 0}
	offer := Hand{2, 0, 0, 0, 0}
	request := Hand{0, 0, 0, 1, 0}

	proposed, err := gs.Apply(NewProposeTrade(0, offer, request))
	require.NoError(t, err)
	require.NotNil(t, proposed.PendingTrade)

	t.Run("accept swaps the resources", func(t *testing.T) {
		done, err := proposed.Apply(NewAcceptTrade(1))
		require.NoError(t, err)
		require.Nil(t, done.PendingTrade)
		require.Equal(t, Hand{0, 0, 0, 1, 0}, done.Players[0].Hand)
		require.Equal(t, Hand{2, 0, 0, 0, 0}, done.Players[1].Hand)
	})

	t.Run("proposer cannot accept", func(t *testing.T) {
		_, err := proposed.Apply(NewAcceptTrade(0))
		require.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("acceptor must hold the request", func(t *testing.T) {
		_, err := proposed.Apply(NewAcceptTrade(2))
		require.ErrorIs(t, err, ErrInsufficientResources)
	})

	t.Run("reject clears without transfer", func(t *testing.T) {
		done, err := proposed.Apply(NewRejectTrade(2))
		require.NoError(t, err)
		require.Nil(t, done.PendingTrade)
		require.Equal(t, Hand{2, 0, 0, 0, 0}, done.Players[0].Hand)
	})

	t.Run("pending offer blocks purchases", func(t *testing.T) {
		cp := proposed.Copy()
		cp.Players[0].Hand = Hand{9, 9, 9, 9, 9}
		_, err := cp.Apply(NewBuyDevCard(0))
		require.ErrorIs(t, err, ErrTradePending)
		_, err = cp.Apply(NewProposeTrade(0, offer, request))
		require.ErrorIs(t, err, ErrTradePending)
	})

	t.Run("pending offer leaves bank trades open", func(t *testing.T) {
		cp := proposed.Copy()
		cp.Players[0].Hand = Hand{6, 0, 0, 0, 0}
		done, err := cp.Apply(NewMaritimeTrade(0, Lumber, Ore))
		require.NoError(t, err)
		require.NotNil(t, done.PendingTrade, "the offer survives the bank trade")
		require.Equal(t, 1, done.Players[0].Hand[Ore])
	})

	t.Run("ending the turn abandons the offer", func(t *testing.T) {
		done, err := proposed.Apply(NewEndTurn(0))
		require.NoError(t, err)
		require.Nil(t, done.PendingTrade)
		require.Equal(t, PhaseRollDice, done.Phase)
	})

	t.Run("resolution actions while pending", func(t *testing.T) {
		actions := proposed.LegalActions()
		var accepts, rejects int
		for _, a := range actions {
			switch a.Type {
			case AcceptTrade:
				accepts++
				require.Equal(t, 1, a.Player, "only the covered opponent may accept")
			case RejectTrade:
				rejects++
			default:
				t.Fatalf("unexpected action %s while trade pending", a.Type)
			}
		}
		require.Equal(t, 1, accepts)
		require.Equal(t, 1, rejects)
	})
}

func TestProposeRequiresResources(t *testing.T) {
	gs := tradeReady(t)

	_, err := gs.Apply(NewProposeTrade(0, Hand{1, 0, 0, 0, 0}, Hand{0, 1, 0, 0, 0}))
	require.ErrorIs(t, err, ErrInsufficientResources, "cannot offer what you do not hold")

	gs.Players[0].Hand = Hand{1, 0, 0, 0, 0}
	_, err = gs.Apply(NewProposeTrade(0, Hand{}, Hand{0, 1, 0, 0, 0}))
	require.ErrorIs(t, err, ErrInvalidTarget, "empty offer")
}
