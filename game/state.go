package game

import (
	"encoding/binary"
	"hash/fnv"
)

// PlayerState is one seat's hand, pieces and development cards.
type PlayerState struct {
	ID   int
	Name string

	Hand Hand

	// DevCards is the playable pool; NewDevCards quarantines cards bought
	// this turn until the player's next end of turn.
	DevCards    []DevCard
	NewDevCards []DevCard

	KnightsPlayed int

	SettlementsLeft int
	CitiesLeft      int
	RoadsLeft       int

	PlayedDevCardThisTurn bool
}

func (p PlayerState) copy() PlayerState {
	devCards := make([]DevCard, len(p.DevCards))
	copy(devCards, p.DevCards)
	newCards := make([]DevCard, len(p.NewDevCards))
	copy(newCards, p.NewDevCards)
	p.DevCards = devCards
	p.NewDevCards = newCards
	return p
}

// TradeOffer is the single pending domestic trade, if any.
type TradeOffer struct {
	Proposer int
	Offer    Hand
	Request  Hand
}

// Event is one entry of the append-only game log.
type Event struct {
	Turn   int
	Player int
	Type   ActionType
	Detail string
}

// NoPlayer marks an unset player reference (award holders, winner).
const NoPlayer = -1

// NoVertex marks an unset vertex reference.
const NoVertex = -1

// GameState is the canonical snapshot of a game. Transitions are produced
// only by Apply, which returns a new value; a state is never mutated after it
// has been handed out. Topology, Terrains, Numbers and Harbors are fixed at
// creation and shared between copies.
type GameState struct {
	Phase         Phase
	CurrentPlayer int
	TurnNumber    int

	Topology *Topology
	Terrains []Terrain
	Numbers  []int
	Harbors  []Harbor

	RobberHex int
	Buildings []Building // per vertex
	Roads     []int      // per edge, owner or NoPlayer

	Players []PlayerState
	DevDeck []DevCard // drawn from the end
	Bank    Hand

	LongestRoadPlayer int
	LongestRoadLength int
	LargestArmyPlayer int
	LargestArmySize   int

	LastRoll [2]int // zero until the first roll of a turn

	SetupRound int // 0 = first pass, 1 = reverse pass
	SetupIndex int // position in the snake order

	PendingDiscards  []int // players owing a discard, head acts first
	RoadBuildingLeft int   // free roads remaining from a road-building card
	LastPlacedVertex int   // settlement just placed during setup, else NoVertex

	PendingTrade *TradeOffer

	WinnerID int

	Events []Event

	Seed uint64
	rng  *RNG
}

// NewGameState creates the pre-game state for 3 or 4 named players: topology,
// randomized board, shuffled development deck, full bank, empty hands. All
// randomness comes from the seed, so the same seed always produces the same
// board and deck.
func NewGameState(names []string, seed uint64) (*GameState, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, ErrPlayerCount
	}

	rng := NewRNG(seed)
	board := NewBoard(rng)

	deck := make([]DevCard, len(devCardDistribution))
	copy(deck, devCardDistribution)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	players := make([]PlayerState, len(names))
	for i, name := range names {
		players[i] = PlayerState{
			ID:              i,
			Name:            name,
			SettlementsLeft: MaxSettlements,
			CitiesLeft:      MaxCities,
			RoadsLeft:       MaxRoads,
		}
	}

	buildings := make([]Building, board.Topology.VertexCount)
	roads := make([]int, board.Topology.EdgeCount)
	for i := range roads {
		roads[i] = NoPlayer
	}

	return &GameState{
		Phase:             PhasePreGame,
		CurrentPlayer:     0,
		Topology:          board.Topology,
		Terrains:          board.Terrains,
		Numbers:           board.Numbers,
		Harbors:           board.Harbors,
		RobberHex:         board.DesertHex,
		Buildings:         buildings,
		Roads:             roads,
		Players:           players,
		DevDeck:           deck,
		Bank:              Hand{BankPerResource, BankPerResource, BankPerResource, BankPerResource, BankPerResource},
		LongestRoadPlayer: NoPlayer,
		LargestArmyPlayer: NoPlayer,
		LastPlacedVertex:  NoVertex,
		WinnerID:          NoPlayer,
		Seed:              seed,
		rng:               rng,
	}, nil
}

// Copy returns a deep copy sharing only the immutable board fields. Copies
// carry an independent RNG clone, so branch-and-discard simulation on a copy
// never disturbs the original.
func (gs *GameState) Copy() *GameState {
	next := *gs

	next.Buildings = make([]Building, len(gs.Buildings))
	copy(next.Buildings, gs.Buildings)

	next.Roads = make([]int, len(gs.Roads))
	copy(next.Roads, gs.Roads)

	next.Players = make([]PlayerState, len(gs.Players))
	for i, p := range gs.Players {
		next.Players[i] = p.copy()
	}

	next.DevDeck = make([]DevCard, len(gs.DevDeck))
	copy(next.DevDeck, gs.DevDeck)

	next.PendingDiscards = make([]int, len(gs.PendingDiscards))
	copy(next.PendingDiscards, gs.PendingDiscards)

	next.Events = make([]Event, len(gs.Events))
	copy(next.Events, gs.Events)

	if gs.PendingTrade != nil {
		offer := *gs.PendingTrade
		next.PendingTrade = &offer
	}

	next.rng = gs.rng.Clone()

	return &next
}

// ActingPlayer is the seat the current phase designates to act: the head of
// the discard queue during DISCARD, otherwise the current player.
func (gs *GameState) ActingPlayer() int {
	if gs.Phase == PhaseDiscard && len(gs.PendingDiscards) > 0 {
		return gs.PendingDiscards[0]
	}
	return gs.CurrentPlayer
}

// PlayerCount returns the number of seats.
func (gs *GameState) PlayerCount() int {
	return len(gs.Players)
}

// Winner returns the winning player's name, or "" while the game runs.
func (gs *GameState) Winner() string {
	if gs.WinnerID == NoPlayer {
		return ""
	}
	return gs.Players[gs.WinnerID].Name
}

// RNG exposes the in-state generator for serialization. External callers must
// not draw from it.
func (gs *GameState) RNG() *RNG {
	return gs.rng
}

// logEvent appends to the game log.
func (gs *GameState) logEvent(player int, t ActionType, detail string) {
	gs.Events = append(gs.Events, Event{
		Turn:   gs.TurnNumber,
		Player: player,
		Type:   t,
		Detail: detail,
	})
}

// StateHash identifies a state for replay reconciliation and transposition.
type StateHash uint64

// Hash folds the dynamic state fields into an FNV-64a digest. The fixed board
// is excluded: two states from the same seed share it by construction.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()
	write := func(v int64) {
		binary.Write(h, binary.LittleEndian, v)
	}

	write(int64(gs.Phase))
	write(int64(gs.CurrentPlayer))
	write(int64(gs.TurnNumber))
	write(int64(gs.RobberHex))

	for _, b := range gs.Buildings {
		write(int64(b.Kind))
		write(int64(b.Owner))
	}
	for _, owner := range gs.Roads {
		write(int64(owner))
	}
	for _, p := range gs.Players {
		for _, n := range p.Hand {
			write(int64(n))
		}
		for _, c := range p.DevCards {
			write(int64(c))
		}
		for _, c := range p.NewDevCards {
			write(int64(c))
		}
		write(int64(p.KnightsPlayed))
		write(int64(p.SettlementsLeft))
		write(int64(p.CitiesLeft))
		write(int64(p.RoadsLeft))
	}
	for _, n := range gs.Bank {
		write(int64(n))
	}
	for _, c := range gs.DevDeck {
		write(int64(c))
	}
	write(int64(gs.LongestRoadPlayer))
	write(int64(gs.LongestRoadLength))
	write(int64(gs.LargestArmyPlayer))
	write(int64(gs.LargestArmySize))

	return StateHash(h.Sum64())
}
