package cycles

import "github.com/graydonpleasants/geo-polygonize/planar"

// RemoveCutEdges implements spec §4.4 Step C: a cut edge is an edge whose
// two half-edges belong to the same ring (the ring traverses it in both
// directions), so it cannot bound a face. Cut edges are marked and the
// affected rings are re-walked, repeating until no ring contains a cut
// edge. Re-running full assembly after each marking pass is simpler than
// patching only the affected component and is cheap at the scale this
// pipeline targets.
func RemoveCutEdges(g *planar.Graph, rings []Ring) []Ring {
	for {
		cut := findCutEdges(g, rings)
		if len(cut) == 0 {
			return rings
		}
		for _, h := range cut {
			g.HalfEdges[h].Marked = true
			g.HalfEdges[g.TwinOf(h)].Marked = true
		}
		resetRingState(g)
		rings = AssembleRings(g)
	}
}

func findCutEdges(g *planar.Graph, rings []Ring) []planar.HalfEdgeIndex {
	var cuts []planar.HalfEdgeIndex
	seen := make(map[planar.HalfEdgeIndex]bool)

	for _, r := range rings {
		for _, h := range r.HalfEdges {
			if seen[h] {
				continue
			}
			twin := g.TwinOf(h)
			if g.HalfEdges[twin].RingID == g.HalfEdges[h].RingID {
				cuts = append(cuts, h)
				seen[h] = true
				seen[twin] = true
			}
		}
	}
	return cuts
}

func resetRingState(g *planar.Graph) {
	for i := range g.HalfEdges {
		if g.HalfEdges[i].Marked {
			continue
		}
		g.HalfEdges[i].RingID = planar.NoRing
		g.HalfEdges[i].NextInRing = planar.NoHalfEdge
	}
}
