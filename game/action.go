package game

// ActionType tags the kind of an Action. The reducer's dispatch enumerates
// every kind; an unknown tag is rejected, never silently ignored.
type ActionType int

const (
	StartGame ActionType = iota
	PlaceSetupSettlement
	PlaceSetupRoad
	RollDice
	DiscardResources
	MoveRobber
	StealResource
	BuildRoad
	BuildSettlement
	BuildCity
	BuyDevCard
	PlayKnight
	PlayRoadBuilding
	PlaceRoadBuildingRoad
	PlayYearOfPlenty
	PickYearOfPlentyResources
	PlayMonopoly
	PickMonopolyResource
	MaritimeTrade
	ProposeTrade
	AcceptTrade
	RejectTrade
	EndTurn
)

var actionNames = []string{
	"START_GAME",
	"PLACE_SETUP_SETTLEMENT",
	"PLACE_SETUP_ROAD",
	"ROLL_DICE",
	"DISCARD_RESOURCES",
	"MOVE_ROBBER",
	"STEAL_RESOURCE",
	"BUILD_ROAD",
	"BUILD_SETTLEMENT",
	"BUILD_CITY",
	"BUY_DEV_CARD",
	"PLAY_KNIGHT",
	"PLAY_ROAD_BUILDING",
	"PLACE_ROAD_BUILDING_ROAD",
	"PLAY_YEAR_OF_PLENTY",
	"PICK_YEAR_OF_PLENTY_RESOURCES",
	"PLAY_MONOPOLY",
	"PICK_MONOPOLY_RESOURCE",
	"MARITIME_TRADE",
	"PROPOSE_TRADE",
	"ACCEPT_TRADE",
	"REJECT_TRADE",
	"END_TURN",
}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[t]
}

// NoVictim requests a random steal target.
const NoVictim = -1

// Action is a proposed game move. Player is the declared actor; the remaining
// fields are read per Type, everything else is ignored.
type Action struct {
	Player int
	Type   ActionType

	Vertex int // settlement/city placements
	Edge   int // road placements
	Hex    int // robber movement

	// Victim is the steal target; NoVictim asks the engine to choose
	// uniformly at random among eligible hands.
	Victim int

	Give    Resource // maritime trade give, monopoly pick
	Receive Resource // maritime trade receive

	// Resources carries a per-resource count vector: the discard amounts for
	// DiscardResources (summing to the required discard) and the two picked
	// resources for PickYearOfPlentyResources (summing to 2).
	Resources Hand

	// Offer and Request are the proposer's side and the requested side of a
	// domestic trade.
	Offer   Hand
	Request Hand

	// Dice overrides the roll for deterministic testing/replay when non-zero.
	Dice [2]int
}

// Constructors keep tests and agents from relying on zero values of
// unrelated fields.

func NewStartGame(player int) Action {
	return Action{Player: player, Type: StartGame}
}

func NewPlaceSetupSettlement(player, vertex int) Action {
	return Action{Player: player, Type: PlaceSetupSettlement, Vertex: vertex}
}

func NewPlaceSetupRoad(player, edge int) Action {
	return Action{Player: player, Type: PlaceSetupRoad, Edge: edge}
}

func NewRollDice(player int) Action {
	return Action{Player: player, Type: RollDice}
}

// NewRollDiceFixed rolls a caller-supplied result, for tests and replay.
func NewRollDiceFixed(player, d1, d2 int) Action {
	return Action{Player: player, Type: RollDice, Dice: [2]int{d1, d2}}
}

func NewDiscard(player int, resources Hand) Action {
	return Action{Player: player, Type: DiscardResources, Resources: resources}
}

func NewMoveRobber(player, hex int) Action {
	return Action{Player: player, Type: MoveRobber, Hex: hex}
}

func NewSteal(player, victim int) Action {
	return Action{Player: player, Type: StealResource, Victim: victim}
}

func NewBuildRoad(player, edge int) Action {
	return Action{Player: player, Type: BuildRoad, Edge: edge}
}

func NewBuildSettlement(player, vertex int) Action {
	return Action{Player: player, Type: BuildSettlement, Vertex: vertex}
}

func NewBuildCity(player, vertex int) Action {
	return Action{Player: player, Type: BuildCity, Vertex: vertex}
}

func NewBuyDevCard(player int) Action {
	return Action{Player: player, Type: BuyDevCard}
}

func NewPlayKnight(player int) Action {
	return Action{Player: player, Type: PlayKnight}
}

func NewPlayRoadBuilding(player int) Action {
	return Action{Player: player, Type: PlayRoadBuilding}
}

func NewPlaceRoadBuildingRoad(player, edge int) Action {
	return Action{Player: player, Type: PlaceRoadBuildingRoad, Edge: edge}
}

func NewPlayYearOfPlenty(player int) Action {
	return Action{Player: player, Type: PlayYearOfPlenty}
}

func NewPickYearOfPlenty(player int, r1, r2 Resource) Action {
	var picks Hand
	picks[r1]++
	picks[r2]++
	return Action{Player: player, Type: PickYearOfPlentyResources, Resources: picks}
}

func NewPlayMonopoly(player int) Action {
	return Action{Player: player, Type: PlayMonopoly}
}

func NewPickMonopoly(player int, resource Resource) Action {
	return Action{Player: player, Type: PickMonopolyResource, Give: resource}
}

func NewMaritimeTrade(player int, give, receive Resource) Action {
	return Action{Player: player, Type: MaritimeTrade, Give: give, Receive: receive}
}

func NewProposeTrade(player int, offer, request Hand) Action {
	return Action{Player: player, Type: ProposeTrade, Offer: offer, Request: request}
}

func NewAcceptTrade(player int) Action {
	return Action{Player: player, Type: AcceptTrade}
}

func NewRejectTrade(player int) Action {
	return Action{Player: player, Type: RejectTrade}
}

func NewEndTurn(player int) Action {
	return Action{Player: player, Type: EndTurn}
}

// mutatesOccupancy reports whether an action kind can change board occupancy
// and therefore requires recomputing the longest-road award.
func (t ActionType) mutatesOccupancy() bool {
	switch t {
	case PlaceSetupSettlement, PlaceSetupRoad, BuildRoad, BuildSettlement,
		BuildCity, PlaceRoadBuildingRoad:
		return true
	}
	return false
}
