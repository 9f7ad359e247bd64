package game

// Resource is one of the five tradable resource kinds.
type Resource int

const (
	Lumber Resource = iota
	Brick
	Wool
	Grain
	Ore
	NumResources = 5
)

var resourceNames = []string{"lumber", "brick", "wool", "grain", "ore"}

func (r Resource) String() string {
	if r < 0 || int(r) >= NumResources {
		return "unknown"
	}
	return resourceNames[r]
}

// Resources lists every resource in canonical order.
var Resources = []Resource{Lumber, Brick, Wool, Grain, Ore}

// Terrain is a hex tile kind. Desert produces nothing.
type Terrain int

const (
	Forest Terrain = iota
	Hills
	Pasture
	Fields
	Mountains
	Desert
)

var terrainNames = []string{"forest", "hills", "pasture", "fields", "mountains", "desert"}

func (t Terrain) String() string {
	if t < 0 || int(t) > int(Desert) {
		return "unknown"
	}
	return terrainNames[t]
}

// Produces returns the resource a terrain yields, or false for desert.
func (t Terrain) Produces() (Resource, bool) {
	switch t {
	case Forest:
		return Lumber, true
	case Hills:
		return Brick, true
	case Pasture:
		return Wool, true
	case Fields:
		return Grain, true
	case Mountains:
		return Ore, true
	default:
		return 0, false
	}
}

// terrainDistribution is the fixed multiset of tiles on the standard board.
var terrainDistribution = []Terrain{
	Forest, Forest, Forest, Forest,
	Hills, Hills, Hills,
	Pasture, Pasture, Pasture, Pasture,
	Fields, Fields, Fields, Fields,
	Mountains, Mountains, Mountains,
	Desert,
}

// numberTokenDistribution are the 18 number tokens for non-desert hexes.
var numberTokenDistribution = []int{
	2,
	3, 3,
	4, 4,
	5, 5,
	6, 6,
	8, 8,
	9, 9,
	10, 10,
	11, 11,
	12,
}

// DevCard is a development card kind. CardHidden is only used by redaction.
type DevCard int

const (
	Knight DevCard = iota
	VictoryPointCard
	RoadBuilding
	YearOfPlenty
	Monopoly
	CardHidden
)

var devCardNames = []string{"knight", "victory_point", "road_building", "year_of_plenty", "monopoly", "hidden"}

func (c DevCard) String() string {
	if c < 0 || int(c) >= len(devCardNames) {
		return "unknown"
	}
	return devCardNames[c]
}

// devCardDistribution is the 25-card deck.
var devCardDistribution = buildDevCardDistribution()

func buildDevCardDistribution() []DevCard {
	deck := make([]DevCard, 0, 25)
	for i := 0; i < 14; i++ {
		deck = append(deck, Knight)
	}
	for i := 0; i < 5; i++ {
		deck = append(deck, VictoryPointCard)
	}
	for i := 0; i < 2; i++ {
		deck = append(deck, RoadBuilding)
	}
	for i := 0; i < 2; i++ {
		deck = append(deck, YearOfPlenty)
	}
	for i := 0; i < 2; i++ {
		deck = append(deck, Monopoly)
	}
	return deck
}

// Hand is a per-resource count vector, indexed by Resource.
type Hand [NumResources]int

// Total returns the number of cards in the hand.
func (h Hand) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Covers reports whether the hand holds at least cost of every resource.
func (h Hand) Covers(cost Hand) bool {
	for r := 0; r < NumResources; r++ {
		if h[r] < cost[r] {
			return false
		}
	}
	return true
}

// Add returns h with other added component-wise.
func (h Hand) Add(other Hand) Hand {
	for r := 0; r < NumResources; r++ {
		h[r] += other[r]
	}
	return h
}

// Sub returns h with other subtracted component-wise.
func (h Hand) Sub(other Hand) Hand {
	for r := 0; r < NumResources; r++ {
		h[r] -= other[r]
	}
	return h
}

// Building costs.
var (
	RoadCost       = Hand{1, 1, 0, 0, 0}
	SettlementCost = Hand{1, 1, 1, 1, 0}
	CityCost       = Hand{0, 0, 0, 2, 3}
	DevCardCost    = Hand{0, 0, 1, 1, 1}
)

// Piece limits and fixed pool sizes.
const (
	MaxSettlements  = 5
	MaxCities       = 4
	MaxRoads        = 15
	BankPerResource = 19

	VPToWin        = 10
	MinLongestRoad = 5
	MinLargestArmy = 3

	// A roll of 7 forces players above this hand size to discard.
	DiscardThreshold = 7

	MinPlayers = 3
	MaxPlayers = 4
)

// HarborKind is a maritime trade bonus: generic 3:1 or a resource 2:1.
type HarborKind int

const (
	HarborGeneric HarborKind = iota
	HarborLumber
	HarborBrick
	HarborWool
	HarborGrain
	HarborOre
)

func (k HarborKind) String() string {
	if k == HarborGeneric {
		return "generic"
	}
	return Resource(k - 1).String()
}

// Matches reports whether a specific harbor kind covers the resource.
func (k HarborKind) Matches(r Resource) bool {
	return k != HarborGeneric && Resource(k-1) == r
}

// standardHarborKinds is the fixed harbor sequence placed around the coast.
var standardHarborKinds = []HarborKind{
	HarborGeneric, HarborGrain, HarborOre, HarborGeneric, HarborWool,
	HarborGeneric, HarborGeneric, HarborBrick, HarborLumber,
}

// Harbor binds a trade bonus to the two coastal vertices that grant it.
type Harbor struct {
	Kind     HarborKind
	Vertices [2]int
}

// BuildingKind occupies a vertex.
type BuildingKind int

const (
	NoBuilding BuildingKind = iota
	Settlement
	City
)

// Building is a vertex occupant. Owner is meaningless when Kind is NoBuilding.
type Building struct {
	Kind  BuildingKind
	Owner int
}

// Phase is the top-level turn state machine position.
type Phase int

const (
	PhasePreGame Phase = iota
	PhaseSetupPlaceSettlement
	PhaseSetupPlaceRoad
	PhaseRollDice
	PhaseDiscard
	PhaseMoveRobber
	PhaseSteal
	PhaseTradeBuildPlay
	PhaseRoadBuildingPlace
	PhaseYearOfPlentyPick
	PhaseMonopolyPick
	PhaseGameOver
)

var phaseNames = []string{
	"PRE_GAME",
	"SETUP_PLACE_SETTLEMENT",
	"SETUP_PLACE_ROAD",
	"ROLL_DICE",
	"DISCARD",
	"MOVE_ROBBER",
	"STEAL",
	"TRADE_BUILD_PLAY",
	"ROAD_BUILDING_PLACE",
	"YEAR_OF_PLENTY_PICK",
	"MONOPOLY_PICK",
	"GAME_OVER",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}
