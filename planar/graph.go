// Package planar builds the planar graph that the cycle extractor walks:
// an arena of unique grid-snapped nodes and directed half-edges, bulk
// loaded from a set of already-noded segments. Grounded on the teacher's
// arena-of-indices style (pkg/s57/index.go's flat ChartEntry slice feeding
// an rtreego index) generalized to a dense node/half-edge arena per the
// spec's "arena + dense indices instead of pointer graphs" design note.
package planar

import (
	"sort"

	"github.com/graydonpleasants/geo-polygonize/geom"
)

// NodeIndex and HalfEdgeIndex are dense arena indices, never pointers.
type NodeIndex int32
type HalfEdgeIndex int32

// HalfEdge is one directed side of an undirected edge. Twins are allocated
// adjacently so Twin(h) == h^1 without needing to store it, though we store
// it explicitly too since it reads more clearly at call sites and costs one
// int32 per half-edge.
type HalfEdge struct {
	Origin     NodeIndex
	Twin       HalfEdgeIndex
	NextInRing HalfEdgeIndex // set by the cycle extractor; -1 until then
	RingID     int32         // set by the cycle extractor; -1 until assigned
	Marked     bool          // dangle / cut-edge flag
}

const NoRing int32 = -1
const NoHalfEdge HalfEdgeIndex = -1

// Graph is the bulk-loaded planar graph. Node coordinates are stored as
// parallel arrays (Structure of Arrays) for cache-friendly iteration during
// hole assignment, per spec §4.3.
type Graph struct {
	NodeX, NodeY []float64
	outEdges     [][]HalfEdgeIndex // per-node outgoing half-edges, unordered until orderOutgoing
	ordered      []bool            // per-node: has angular ordering been computed

	HalfEdges []HalfEdge
	GridSize  float64
}

// NodeCount returns the number of unique nodes in the arena.
func (g *Graph) NodeCount() int { return len(g.NodeX) }

// NodePoint returns node i's coordinate.
func (g *Graph) NodePoint(i NodeIndex) geom.Point {
	return geom.Point{X: g.NodeX[i], Y: g.NodeY[i]}
}

// Out returns node i's outgoing half-edges, sorted by angle (computed
// lazily and memoized on first access).
func (g *Graph) Out(i NodeIndex) []HalfEdgeIndex {
	if !g.ordered[i] {
		g.orderOutgoing(i)
	}
	return g.outEdges[i]
}

// TwinOf returns h's twin; exposed as a method for readability at call sites.
func (g *Graph) TwinOf(h HalfEdgeIndex) HalfEdgeIndex {
	return g.HalfEdges[h].Twin
}

// BuildGraph bulk-loads noded segments into a planar graph. Duplicate
// undirected edges between the same snapped endpoints collapse to a single
// half-edge pair; self-loops (both endpoints snap to the same node) are
// discarded, matching spec §4.3.
func BuildGraph(segments []geom.Segment, gridSize float64) *Graph {
	g := &Graph{GridSize: gridSize}

	nodeIndex := make(map[geom.GridKey]NodeIndex)
	nodeOf := func(p geom.Point) NodeIndex {
		key := geom.SnapToGrid(p, gridSize)
		if idx, ok := nodeIndex[key]; ok {
			return idx
		}
		idx := NodeIndex(len(g.NodeX))
		snapped := key.Point(gridSize)
		g.NodeX = append(g.NodeX, snapped.X)
		g.NodeY = append(g.NodeY, snapped.Y)
		nodeIndex[key] = idx
		return idx
	}

	seen := make(map[undirectedPair]bool, len(segments))

	for _, s := range segments {
		a := nodeOf(s.A)
		b := nodeOf(s.B)
		if a == b {
			continue // self-loop after snapping
		}
		pair := undirectedPairOf(a, b)
		if seen[pair] {
			continue
		}
		seen[pair] = true
		g.addEdgePair(a, b)
	}

	g.outEdges = make([][]HalfEdgeIndex, len(g.NodeX))
	g.ordered = make([]bool, len(g.NodeX))
	for h := range g.HalfEdges {
		origin := g.HalfEdges[h].Origin
		g.outEdges[origin] = append(g.outEdges[origin], HalfEdgeIndex(h))
	}

	return g
}

func (g *Graph) addEdgePair(a, b NodeIndex) {
	fwd := HalfEdgeIndex(len(g.HalfEdges))
	rev := fwd + 1
	g.HalfEdges = append(g.HalfEdges,
		HalfEdge{Origin: a, Twin: rev, NextInRing: NoHalfEdge, RingID: NoRing},
		HalfEdge{Origin: b, Twin: fwd, NextInRing: NoHalfEdge, RingID: NoRing},
	)
}

type undirectedPair struct{ Lo, Hi NodeIndex }

func undirectedPairOf(a, b NodeIndex) undirectedPair {
	if a > b {
		a, b = b, a
	}
	return undirectedPair{a, b}
}

// orderOutgoing sorts node i's outgoing half-edges by the pseudo-angle of
// the bearing from i to the half-edge's destination, deterministically and
// independent of insertion order (spec §4.3 "Angular ordering").
func (g *Graph) orderOutgoing(i NodeIndex) {
	edges := g.outEdges[i]
	origin := g.NodePoint(i)

	sort.Slice(edges, func(x, y int) bool {
		dx := g.destPoint(edges[x])
		dy := g.destPoint(edges[y])
		return lessByAngle(origin, dx, dy)
	})

	g.ordered[i] = true
}

func (g *Graph) destPoint(h HalfEdgeIndex) geom.Point {
	twin := g.HalfEdges[h].Twin
	return g.NodePoint(g.HalfEdges[twin].Origin)
}

// lessByAngle orders b1 before b2 around origin using a pseudo-angle
// (monotonic in true angle, cheaper than atan2). Equal pseudo-angles are
// broken by distance from origin, nearer first; no orientation predicate
// is consulted.
func lessByAngle(origin, b1, b2 geom.Point) bool {
	p1 := pseudoAngle(origin, b1)
	p2 := pseudoAngle(origin, b2)
	if p1 != p2 {
		return p1 < p2
	}
	// Exact tie: both points lie on the same ray from origin (or the
	// pseudo-angle quantization coincided); fall back to distance so the
	// ordering is still a strict, deterministic total order.
	return origin.Dist(b1) < origin.Dist(b2)
}

// pseudoAngle returns a value monotonic in the true angle of (p-origin)
// but cheaper to compute than atan2, in the same spirit as the spec's
// "robust pseudo-angle or comparator based on orientation predicates".
// Follows the Delaunator convention: a = dx/(|dx|+|dy|), mapped to 1+a
// when dy <= 0 and to 3-a when dy > 0, so the value rises from 0 (west,
// along the lower half-plane) through 2 (east) to just under 4, running
// counter-clockwise with every quadrant on its own monotonic sub-range.
func pseudoAngle(origin, p geom.Point) float64 {
	dx, dy := p.X-origin.X, p.Y-origin.Y
	ax, ay := abs64(dx), abs64(dy)
	if ax+ay == 0 {
		return 0
	}
	a := dx / (ax + ay)
	if dy > 0 {
		return 3 - a
	}
	return 1 + a
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
