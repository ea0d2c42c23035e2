package cycles

import (
	"github.com/graydonpleasants/geo-polygonize/geom"
	"github.com/graydonpleasants/geo-polygonize/planar"
)

// AssembleRings implements spec §4.4 Step B: for each unmarked half-edge
// not yet assigned to a ring, walk minimum-angle turns until the walk
// returns to its start, closing one ring. Determinism: when multiple valid
// walk starts exist, the lowest-indexed unvisited half-edge is picked,
// which falls out naturally from iterating the arena in index order.
func AssembleRings(g *planar.Graph) []Ring {
	n := len(g.HalfEdges)
	assigned := make([]bool, n)

	var rings []Ring
	var nextID int32

	for i := 0; i < n; i++ {
		h := planar.HalfEdgeIndex(i)
		if g.HalfEdges[i].Marked || assigned[i] {
			continue
		}
		ring := walkRing(g, h, nextID, assigned)
		rings = append(rings, ring)
		nextID++
	}

	return rings
}

func walkRing(g *planar.Graph, start planar.HalfEdgeIndex, ringID int32, assigned []bool) Ring {
	var edges []planar.HalfEdgeIndex
	var pts []geom.Point

	h := start
	for {
		assigned[h] = true
		g.HalfEdges[h].RingID = ringID
		edges = append(edges, h)
		pts = append(pts, g.NodePoint(g.HalfEdges[h].Origin))

		next := nextHalfEdge(g, h)
		g.HalfEdges[h].NextInRing = next
		h = next

		if h == start {
			break
		}
	}

	pts = append(pts, pts[0])

	return Ring{
		ID:        ringID,
		HalfEdges: edges,
		Vertices:  pts,
		Area:      signedArea(pts),
		Bounds:    geom.BoundsOf(pts),
	}
}

// nextHalfEdge implements the turn rule of spec §4.4 Step B: arriving at
// node v via half-edge h, the next half-edge is the outgoing edge at v
// whose angle is the immediate predecessor of twin(h)'s angle in v's
// angular ordering. Graph.Out orders edges counter-clockwise, so this is
// the sharpest left turn relative to the incoming direction: bounded faces
// are walked counter-clockwise (positive area) and each component's outer
// boundary clockwise (negative area).
func nextHalfEdge(g *planar.Graph, h planar.HalfEdgeIndex) planar.HalfEdgeIndex {
	twinH := g.TwinOf(h)
	v := g.HalfEdges[twinH].Origin

	out := activeOut(g, v)
	pos := indexOf(out, twinH)
	pred := (pos - 1 + len(out)) % len(out)
	return out[pred]
}

func indexOf(edges []planar.HalfEdgeIndex, target planar.HalfEdgeIndex) int {
	for i, e := range edges {
		if e == target {
			return i
		}
	}
	return 0
}
