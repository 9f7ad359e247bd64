package game

import (
	"math"
	"sort"
)

// tokenRetries bounds the re-shuffles used to keep 6s and 8s apart. On
// exhaustion the last shuffle is accepted as-is.
const tokenRetries = 100

// Board is a randomized standard board: the shared topology plus the terrain,
// number-token and harbor assignment for one game.
type Board struct {
	Topology  *Topology
	Terrains  []Terrain
	Numbers   []int // 0 for desert
	Harbors   []Harbor
	DesertHex int
}

// NewBoard randomizes terrain and tokens over the standard topology using
// rng, re-shuffling (bounded) while any two hexes holding 6 or 8 are
// adjacent, and derives harbor placement along the coastline.
func NewBoard(rng *RNG) *Board {
	topo := StandardTopology()

	var terrains []Terrain
	var numbers []int
	desert := 0
	for attempt := 0; attempt < tokenRetries; attempt++ {
		terrains = shuffledTerrains(rng)
		numbers, desert = assignTokens(terrains, rng)
		if !hotTokensAdjacent(topo, numbers) {
			break
		}
	}

	return &Board{
		Topology:  topo,
		Terrains:  terrains,
		Numbers:   numbers,
		Harbors:   assignHarbors(topo),
		DesertHex: desert,
	}
}

func shuffledTerrains(rng *RNG) []Terrain {
	terrains := make([]Terrain, len(terrainDistribution))
	copy(terrains, terrainDistribution)
	rng.Shuffle(len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})
	return terrains
}

// assignTokens deals the shuffled token multiset onto non-desert hexes in
// shuffle order and returns the token list plus the desert hex ID.
func assignTokens(terrains []Terrain, rng *RNG) ([]int, int) {
	tokens := make([]int, len(numberTokenDistribution))
	copy(tokens, numberTokenDistribution)
	rng.Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})

	numbers := make([]int, len(terrains))
	desert := 0
	next := 0
	for hid, t := range terrains {
		if t == Desert {
			desert = hid
			continue
		}
		numbers[hid] = tokens[next]
		next++
	}
	return numbers, desert
}

// hotTokensAdjacent reports whether any two hexes holding the high-probability
// tokens (6 or 8) border each other.
func hotTokensAdjacent(topo *Topology, numbers []int) bool {
	for h1 := range numbers {
		if numbers[h1] != 6 && numbers[h1] != 8 {
			continue
		}
		for h2 := h1 + 1; h2 < len(numbers); h2++ {
			if numbers[h2] != 6 && numbers[h2] != 8 {
				continue
			}
			if topo.HexesAdjacent(h1, h2) {
				return true
			}
		}
	}
	return false
}

type coastalEdge struct {
	eid    int
	v1, v2 int
}

// coastalEdges returns edges whose endpoints both sit on the coast and which
// border exactly one hex.
func coastalEdges(topo *Topology) []coastalEdge {
	coastal := make([]bool, topo.VertexCount)
	for vid := 0; vid < topo.VertexCount; vid++ {
		coastal[vid] = len(topo.VertexAdjacentHexes[vid]) < 3
	}

	var edges []coastalEdge
	for eid, ep := range topo.EdgeEndpoints {
		if !coastal[ep[0]] || !coastal[ep[1]] {
			continue
		}
		shared := 0
		for _, h := range topo.VertexAdjacentHexes[ep[0]] {
			if containsInt(topo.VertexAdjacentHexes[ep[1]], h) {
				shared++
			}
		}
		if shared == 1 {
			edges = append(edges, coastalEdge{eid: eid, v1: ep[0], v2: ep[1]})
		}
	}
	return edges
}

// assignHarbors places the fixed harbor sequence at evenly spaced positions
// among the coastal edges, sorted by angle around the board centroid.
func assignHarbors(topo *Topology) []Harbor {
	edges := coastalEdges(topo)

	var cx, cy float64
	for _, c := range topo.HexCenters {
		cx += c.X
		cy += c.Y
	}
	cx /= float64(len(topo.HexCenters))
	cy /= float64(len(topo.HexCenters))

	angle := func(e coastalEdge) float64 {
		mx := (topo.VertexPos[e.v1].X + topo.VertexPos[e.v2].X) / 2
		my := (topo.VertexPos[e.v1].Y + topo.VertexPos[e.v2].Y) / 2
		return math.Atan2(my-cy, mx-cx)
	}
	sort.Slice(edges, func(i, j int) bool {
		return angle(edges[i]) < angle(edges[j])
	})

	total := len(edges)
	step := float64(total) / float64(len(standardHarborKinds))
	harbors := make([]Harbor, 0, len(standardHarborKinds))
	for i, kind := range standardHarborKinds {
		e := edges[int(float64(i)*step)%total]
		harbors = append(harbors, Harbor{
			Kind:     kind,
			Vertices: [2]int{e.v1, e.v2},
		})
	}
	return harbors
}
