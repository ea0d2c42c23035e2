package cycles

import "github.com/graydonpleasants/geo-polygonize/planar"

// activeOut returns node v's outgoing half-edges, in angular order, with
// already-marked (dangle or cut) half-edges filtered out. Filtering
// preserves the relative order produced by Graph.Out, so the walk's
// "immediate predecessor" rule below stays well defined as edges are
// progressively marked.
func activeOut(g *planar.Graph, v planar.NodeIndex) []planar.HalfEdgeIndex {
	full := g.Out(v)
	out := make([]planar.HalfEdgeIndex, 0, len(full))
	for _, h := range full {
		if !g.HalfEdges[h].Marked {
			out = append(out, h)
		}
	}
	return out
}

// RemoveDangles implements spec §4.4 Step A: iteratively removes degree-1
// nodes. Any node with a single active outgoing half-edge has that edge
// and its twin marked as a dangle; the twin's origin then loses one
// incident edge, which may in turn make it degree-1, so the process
// repeats to a fixpoint. Dangles never participate in a ring.
func RemoveDangles(g *planar.Graph) {
	n := g.NodeCount()
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = len(activeOut(g, planar.NodeIndex(v)))
	}

	queue := make([]planar.NodeIndex, 0, n)
	queued := make([]bool, n)
	for v := 0; v < n; v++ {
		if degree[v] == 1 {
			queue = append(queue, planar.NodeIndex(v))
			queued[v] = true
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false

		out := activeOut(g, v)
		if len(out) != 1 {
			continue // degree changed since this node was queued
		}
		h := out[0]
		twin := g.TwinOf(h)

		g.HalfEdges[h].Marked = true
		g.HalfEdges[twin].Marked = true

		other := g.HalfEdges[twin].Origin
		degree[v]--
		degree[other]--

		if degree[other] == 1 && !queued[other] {
			queue = append(queue, other)
			queued[other] = true
		}
	}
}
