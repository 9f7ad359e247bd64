package game

import "fmt"

// TradeRatio is the maritime rate for player giving resource: 4 by default,
// 3 with a generic harbor, 2 with the resource's specific harbor. Harbor
// access requires a building on one of the harbor's two vertices.
func (gs *GameState) TradeRatio(player int, resource Resource) int {
	ratio := 4
	for _, h := range gs.Harbors {
		if !gs.ownsHarborVertex(player, h) {
			continue
		}
		if h.Kind == HarborGeneric {
			if ratio > 3 {
				ratio = 3
			}
		} else if h.Kind.Matches(resource) {
			ratio = 2
		}
	}
	return ratio
}

func (gs *GameState) ownsHarborVertex(player int, h Harbor) bool {
	for _, vid := range h.Vertices {
		b := gs.Buildings[vid]
		if b.Kind != NoBuilding && b.Owner == player {
			return true
		}
	}
	return false
}

// ValidMaritimeTrade checks that give and receive differ, hand quantity at the player's
// ratio, and bank stock of the received resource.
func (gs *GameState) ValidMaritimeTrade(player int, give, receive Resource) bool {
	if give == receive {
		return false
	}
	if gs.Players[player].Hand[give] < gs.TradeRatio(player, give) {
		return false
	}
	return gs.Bank[receive] > 0
}

func (gs *GameState) applyMaritimeTrade(give, receive Resource) {
	pid := gs.CurrentPlayer
	ratio := gs.TradeRatio(pid, give)
	gs.Players[pid].Hand[give] -= ratio
	gs.Players[pid].Hand[receive]++
	gs.Bank[give] += ratio
	gs.Bank[receive]--
	gs.logEvent(pid, MaritimeTrade, fmt.Sprintf("%d %s for 1 %s", ratio, give, receive))
}

func (gs *GameState) applyProposeTrade(offer, request Hand) {
	pid := gs.CurrentPlayer
	gs.PendingTrade = &TradeOffer{Proposer: pid, Offer: offer, Request: request}
	gs.logEvent(pid, ProposeTrade, "trade proposed")
}

// applyAcceptTrade swaps the offered and requested resources between the
// proposer and the acceptor and clears the pending slot.
func (gs *GameState) applyAcceptTrade(acceptor int) {
	trade := gs.PendingTrade
	proposer := trade.Proposer

	gs.Players[proposer].Hand = gs.Players[proposer].Hand.Sub(trade.Offer).Add(trade.Request)
	gs.Players[acceptor].Hand = gs.Players[acceptor].Hand.Add(trade.Offer).Sub(trade.Request)

	gs.PendingTrade = nil
	gs.logEvent(acceptor, AcceptTrade, fmt.Sprintf("trade with %s resolved", gs.Players[proposer].Name))
}

func (gs *GameState) applyRejectTrade(rejector int) {
	gs.PendingTrade = nil
	gs.logEvent(rejector, RejectTrade, "trade rejected")
}
