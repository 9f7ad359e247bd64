package game

import "math"

// HexSize is the corner radius used when laying out the board geometry. The
// absolute value is irrelevant to play; it only has to be large enough that
// the dedup epsilon can tell distinct corners apart.
const HexSize = 50.0

// pointEpsilon merges corner points that coincide geometrically.
const pointEpsilon = 0.01

// standardHexCoords is the axial layout of the standard 3-4-5-4-3 board.
var standardHexCoords = [][2]int{
	{0, -2}, {1, -2}, {2, -2},
	{-1, -1}, {0, -1}, {1, -1}, {2, -1},
	{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
	{-2, 1}, {-1, 1}, {0, 1}, {1, 1},
	{-2, 2}, {-1, 2}, {0, 2},
}

// Point is a 2D board position.
type Point struct {
	X, Y float64
}

// Topology is the fixed vertex/edge/hex adjacency graph of a board. It is
// built once per game and shared, never mutated.
type Topology struct {
	HexCoords   [][2]int // axial (q, r) per hex
	HexCenters  []Point
	VertexPos   []Point
	VertexCount int
	EdgeCount   int

	VertexAdjacentVertices [][]int
	VertexAdjacentEdges    [][]int
	VertexAdjacentHexes    [][]int
	EdgeEndpoints          [][2]int // sorted vertex pair per edge
	EdgeAdjacentEdges      [][]int
	HexVertices            [][]int // 6 vertex IDs per hex
	HexEdges               [][]int // 6 edge IDs per hex
}

func hexToPixel(q, r int, size float64) Point {
	x := size * (math.Sqrt(3)*float64(q) + math.Sqrt(3)/2*float64(r))
	y := size * 1.5 * float64(r)
	return Point{X: x, Y: y}
}

// hexCorner returns corner i (0-5) of a pointy-top hex centered at c.
func hexCorner(c Point, size float64, i int) Point {
	angle := math.Pi / 180 * float64(60*i-30)
	return Point{
		X: c.X + size*math.Cos(angle),
		Y: c.Y + size*math.Sin(angle),
	}
}

func pointsEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < pointEpsilon && math.Abs(a.Y-b.Y) < pointEpsilon
}

func containsInt(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// BuildTopology derives the full adjacency graph from hex positions. Vertex
// IDs follow discovery order, so the numbering is deterministic for a given
// hex list. For the standard 19-hex board the result has 54 vertices and 72
// edges.
func BuildTopology(hexCoords [][2]int, size float64) *Topology {
	if hexCoords == nil {
		hexCoords = standardHexCoords
	}

	centers := make([]Point, len(hexCoords))
	for hid, qr := range hexCoords {
		centers[hid] = hexToPixel(qr[0], qr[1], size)
	}

	// Compute corners per hex, deduplicating coincident points into vertices.
	var vertexPos []Point
	hexVertices := make([][]int, len(hexCoords))
	for hid, center := range centers {
		vids := make([]int, 6)
		for i := 0; i < 6; i++ {
			corner := hexCorner(center, size, i)
			existing := -1
			for vid, vp := range vertexPos {
				if pointsEqual(vp, corner) {
					existing = vid
					break
				}
			}
			if existing >= 0 {
				vids[i] = existing
			} else {
				vids[i] = len(vertexPos)
				vertexPos = append(vertexPos, corner)
			}
		}
		hexVertices[hid] = vids
	}
	vertexCount := len(vertexPos)

	// Edges are consecutive corner pairs, deduplicated by sorted vertex pair.
	var edgeEndpoints [][2]int
	edgeIndex := make(map[[2]int]int)
	hexEdges := make([][]int, len(hexCoords))
	for hid := range hexCoords {
		vids := hexVertices[hid]
		eids := make([]int, 6)
		for i := 0; i < 6; i++ {
			v1, v2 := vids[i], vids[(i+1)%6]
			if v1 > v2 {
				v1, v2 = v2, v1
			}
			key := [2]int{v1, v2}
			eid, ok := edgeIndex[key]
			if !ok {
				eid = len(edgeEndpoints)
				edgeIndex[key] = eid
				edgeEndpoints = append(edgeEndpoints, key)
			}
			eids[i] = eid
		}
		hexEdges[hid] = eids
	}
	edgeCount := len(edgeEndpoints)

	// Remaining adjacency tables by direct enumeration.
	vAdjHexes := make([][]int, vertexCount)
	for hid := range hexCoords {
		for _, vid := range hexVertices[hid] {
			if !containsInt(vAdjHexes[vid], hid) {
				vAdjHexes[vid] = append(vAdjHexes[vid], hid)
			}
		}
	}

	vAdjEdges := make([][]int, vertexCount)
	for eid, ep := range edgeEndpoints {
		vAdjEdges[ep[0]] = append(vAdjEdges[ep[0]], eid)
		vAdjEdges[ep[1]] = append(vAdjEdges[ep[1]], eid)
	}

	vAdjVerts := make([][]int, vertexCount)
	for _, ep := range edgeEndpoints {
		if !containsInt(vAdjVerts[ep[0]], ep[1]) {
			vAdjVerts[ep[0]] = append(vAdjVerts[ep[0]], ep[1])
		}
		if !containsInt(vAdjVerts[ep[1]], ep[0]) {
			vAdjVerts[ep[1]] = append(vAdjVerts[ep[1]], ep[0])
		}
	}

	eAdjEdges := make([][]int, edgeCount)
	for eid, ep := range edgeEndpoints {
		for _, v := range ep {
			for _, adj := range vAdjEdges[v] {
				if adj != eid && !containsInt(eAdjEdges[eid], adj) {
					eAdjEdges[eid] = append(eAdjEdges[eid], adj)
				}
			}
		}
	}

	return &Topology{
		HexCoords:              hexCoords,
		HexCenters:             centers,
		VertexPos:              vertexPos,
		VertexCount:            vertexCount,
		EdgeCount:              edgeCount,
		VertexAdjacentVertices: vAdjVerts,
		VertexAdjacentEdges:    vAdjEdges,
		VertexAdjacentHexes:    vAdjHexes,
		EdgeEndpoints:          edgeEndpoints,
		EdgeAdjacentEdges:      eAdjEdges,
		HexVertices:            hexVertices,
		HexEdges:               hexEdges,
	}
}

// StandardTopology builds the 19-hex board graph.
func StandardTopology() *Topology {
	return BuildTopology(nil, HexSize)
}

// OtherEndpoint returns the endpoint of edge eid that is not vertex.
func (t *Topology) OtherEndpoint(eid, vertex int) int {
	ep := t.EdgeEndpoints[eid]
	if ep[0] == vertex {
		return ep[1]
	}
	return ep[0]
}

// HexesAdjacent reports whether two hexes share an edge (hex distance 1).
func (t *Topology) HexesAdjacent(h1, h2 int) bool {
	for _, e1 := range t.HexEdges[h1] {
		if containsInt(t.HexEdges[h2], e1) {
			return true
		}
	}
	return false
}
