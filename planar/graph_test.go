package planar

import (
	"testing"

	"github.com/graydonpleasants/geo-polygonize/geom"
)

func unitSquareSegments() []geom.Segment {
	return []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{1, 0}},
		{A: geom.Point{1, 0}, B: geom.Point{1, 1}},
		{A: geom.Point{1, 1}, B: geom.Point{0, 1}},
		{A: geom.Point{0, 1}, B: geom.Point{0, 0}},
	}
}

func TestBuildGraphBasic(t *testing.T) {
	g := BuildGraph(unitSquareSegments(), 1e-9)
	if g.NodeCount() != 4 {
		t.Fatalf("expected 4 nodes, got %d", g.NodeCount())
	}
	if len(g.HalfEdges) != 8 {
		t.Fatalf("expected 8 half-edges (4 pairs), got %d", len(g.HalfEdges))
	}
}

func TestBuildGraphDeduplicatesEdges(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{1, 0}},
		{A: geom.Point{1, 0}, B: geom.Point{0, 0}}, // same undirected edge, reversed
	}
	g := BuildGraph(segs, 1e-9)
	if len(g.HalfEdges) != 2 {
		t.Fatalf("expected a single deduplicated edge pair, got %d half-edges", len(g.HalfEdges))
	}
}

func TestBuildGraphDiscardsSelfLoop(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{1e-12, 1e-12}}, // snaps to same node at coarse grid
	}
	g := BuildGraph(segs, 1e-3)
	if len(g.HalfEdges) != 0 {
		t.Fatalf("expected self-loop to be discarded, got %d half-edges", len(g.HalfEdges))
	}
}

func TestTwinOf(t *testing.T) {
	g := BuildGraph(unitSquareSegments(), 1e-9)
	for h := range g.HalfEdges {
		twin := g.TwinOf(HalfEdgeIndex(h))
		if g.TwinOf(twin) != HalfEdgeIndex(h) {
			t.Fatalf("twin relation not involutive at half-edge %d", h)
		}
	}
}

func TestOutAngularOrderDeterministic(t *testing.T) {
	// Four segments radiating from the origin in arbitrary insertion order.
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{0, 1}},  // north
		{A: geom.Point{0, 0}, B: geom.Point{1, 0}},  // east
		{A: geom.Point{0, 0}, B: geom.Point{0, -1}}, // south
		{A: geom.Point{0, 0}, B: geom.Point{-1, 0}}, // west
	}
	g := BuildGraph(segs, 1e-9)

	var origin NodeIndex
	for i := 0; i < g.NodeCount(); i++ {
		p := g.NodePoint(NodeIndex(i))
		if p.Equal(geom.Point{0, 0}) {
			origin = NodeIndex(i)
		}
	}

	out := g.Out(origin)
	if len(out) != 4 {
		t.Fatalf("expected 4 outgoing half-edges, got %d", len(out))
	}

	var dests []geom.Point
	for _, h := range out {
		dests = append(dests, g.destPoint(h))
	}
	// The absolute starting phase of the pseudo-angle is arbitrary; what
	// must hold is the cyclic order east -> north -> west -> south.
	want := []geom.Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	for i, p := range want {
		if !dests[i].Equal(p) {
			t.Fatalf("angular order[%d] = %v, want %v (full: %v)", i, dests[i], p, dests)
		}
	}

	// Repeated calls must be stable (memoized, not recomputed differently).
	out2 := g.Out(origin)
	for i := range out {
		if out[i] != out2[i] {
			t.Fatalf("Out() not stable across calls at index %d", i)
		}
	}
}

func TestPseudoAngleOrdersAllFourQuadrants(t *testing.T) {
	// One node with outgoing edges into each of the four quadrants,
	// including the upper-left and lower-left quadrants whose true angles
	// (135 deg and 225 deg) the old two-branch formula conflated.
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{1, 1}},   // upper-right, 45deg
		{A: geom.Point{0, 0}, B: geom.Point{-1, 1}},  // upper-left, 135deg
		{A: geom.Point{0, 0}, B: geom.Point{-1, -1}}, // lower-left, 225deg
		{A: geom.Point{0, 0}, B: geom.Point{1, -1}},  // lower-right, 315deg
	}
	g := BuildGraph(segs, 1e-9)

	var origin NodeIndex
	for i := 0; i < g.NodeCount(); i++ {
		if g.NodePoint(NodeIndex(i)).Equal(geom.Point{0, 0}) {
			origin = NodeIndex(i)
		}
	}

	out := g.Out(origin)
	if len(out) != 4 {
		t.Fatalf("expected 4 outgoing half-edges, got %d", len(out))
	}

	var dests []geom.Point
	for _, h := range out {
		dests = append(dests, g.destPoint(h))
	}

	// Increasing true angle: 45, 135, 225, 315 degrees. Any rotation of
	// this cyclic sequence is acceptable; what must NOT happen is 225deg
	// sorting before 135deg (the bug under test).
	want := []geom.Point{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	matchesRotation := false
	for shift := 0; shift < 4; shift++ {
		ok := true
		for i := 0; i < 4; i++ {
			if !dests[i].Equal(want[(i+shift)%4]) {
				ok = false
				break
			}
		}
		if ok {
			matchesRotation = true
			break
		}
	}
	if !matchesRotation {
		t.Fatalf("angular order %v is not a rotation of the true-angle order %v", dests, want)
	}
}
