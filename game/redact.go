package game

// RedactFor returns a copy of the state as seen by viewer: the deck and
// every other player's development cards are masked with CardHidden. Counts
// survive redaction, so a viewer still knows how many cards everyone holds.
func (gs *GameState) RedactFor(viewer int) *GameState {
	view := gs.Copy()

	view.DevDeck = hiddenCards(len(view.DevDeck))
	for pid := range view.Players {
		if pid == viewer {
			continue
		}
		p := &view.Players[pid]
		p.DevCards = hiddenCards(len(p.DevCards))
		p.NewDevCards = hiddenCards(len(p.NewDevCards))
	}
	return view
}

func hiddenCards(n int) []DevCard {
	if n == 0 {
		return nil
	}
	cards := make([]DevCard, n)
	for i := range cards {
		cards[i] = CardHidden
	}
	return cards
}
