// Package holes assigns each hole ring to its smallest enclosing shell
// ring, using an R-tree over shell bounding boxes plus point-in-ring
// tests — the innermost-containment rule needed for nested
// shell-hole-island structures (spec §4.5). Grounded on pkg/s57/index.go's
// ChartIndex: that package builds an rtreego index over chart bounding
// boxes and filters candidates by a secondary exact test; this package
// does the same with shell bounds and point-in-ring.
package holes

import (
	"github.com/dhconnelly/rtreego"

	"github.com/graydonpleasants/geo-polygonize/cycles"
	"github.com/graydonpleasants/geo-polygonize/geom"
)

// Polygon is one shell ring plus its assigned hole rings.
type Polygon struct {
	Shell cycles.Ring
	Holes []cycles.Ring
}

// Options configures hole assignment.
type Options struct {
	// Workers, when > 1, parallelizes the per-hole candidate search. Each
	// hole is independent and writes to its own output slot, so turning
	// this on does not change which shell a hole is assigned to.
	Workers int
}

type shellEntry struct {
	index int
	ring  cycles.Ring
}

func (e shellEntry) Bounds() rtreego.Rect {
	b := e.ring.Bounds
	w := b.MaxX - b.MinX
	h := b.MaxY - b.MinY
	const epsilon = 1e-12
	if w <= 0 {
		w = epsilon
	}
	if h <= 0 {
		h = epsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{w, h})
	return rect
}

// Assign implements spec §4.5: builds an R-tree over shell bounding boxes,
// then for each hole finds the smallest-bbox-area shell whose ring
// actually contains the hole's representative vertex. Holes with no
// containing shell are spurious small rings from dirty input and are
// returned in orphaned rather than attached to anything.
func Assign(shells, holeRings []cycles.Ring, opts Options) (polys []Polygon, orphaned []cycles.Ring) {
	tree := rtreego.NewTree(2, 4, 16)
	for i, s := range shells {
		tree.Insert(shellEntry{index: i, ring: s})
	}

	holesFor := make([][]cycles.Ring, len(shells))
	orphanSlots := make([]*cycles.Ring, len(holeRings))

	assignOne := func(i int) {
		hole := holeRings[i]
		best := bestShell(tree, hole)
		if best < 0 {
			orphanSlots[i] = &holeRings[i]
			return
		}
		holesFor[best] = append(holesFor[best], hole) // guarded below by serial fallback
	}

	if opts.Workers > 1 {
		// The per-hole search itself is read-only and safe to parallelize;
		// only the result-gathering append above needs to stay serial, so
		// we collect indices first and attach afterwards.
		chosen := make([]int, len(holeRings))
		runHoleParallel(len(holeRings), opts.Workers, func(i int) {
			chosen[i] = bestShell(tree, holeRings[i])
		})
		for i, best := range chosen {
			if best < 0 {
				orphanSlots[i] = &holeRings[i]
				continue
			}
			holesFor[best] = append(holesFor[best], holeRings[i])
		}
	} else {
		for i := range holeRings {
			assignOne(i)
		}
	}

	for i, s := range shells {
		polys = append(polys, Polygon{Shell: s, Holes: holesFor[i]})
	}
	for _, o := range orphanSlots {
		if o != nil {
			orphaned = append(orphaned, *o)
		}
	}

	return polys, orphaned
}

// bestShell returns the index (into the original shells slice, via
// shellEntry.index) of the smallest-bbox-area shell containing hole's
// representative vertex, or -1 if none contains it.
func bestShell(tree *rtreego.Rtree, hole cycles.Ring) int {
	if len(hole.Vertices) == 0 {
		return -1
	}
	repr := hole.Vertices[0]

	point := rtreego.Point{repr.X, repr.Y}
	queryRect, _ := rtreego.NewRect(point, []float64{1e-12, 1e-12})
	candidates := tree.SearchIntersect(queryRect)

	best := -1
	bestArea := 0.0
	for _, c := range candidates {
		entry := c.(shellEntry)
		if !geom.PointInRing(repr, entry.ring.Vertices) {
			continue
		}
		area := entry.ring.Bounds.Area()
		if best < 0 || area < bestArea {
			best = entry.index
			bestArea = area
		} else if area == bestArea {
			// Exact tie: fall back to testing mutual ring containment,
			// preferring the ring that does NOT contain the current best
			// (i.e. the one nested strictly inside it).
			if ringStrictlyInside(entry.ring, shellAt(candidates, best)) {
				best = entry.index
			}
		}
	}
	return best
}

func shellAt(candidates []rtreego.Spatial, index int) cycles.Ring {
	for _, c := range candidates {
		entry := c.(shellEntry)
		if entry.index == index {
			return entry.ring
		}
	}
	return cycles.Ring{}
}

// ringStrictlyInside reports whether a's first vertex lies within b's ring
// (boundary counts as within); the other vertices are not tested. It is
// used only to break exact bounding-box-area ties between candidate
// shells (spec §4.5 step 2, "fall back to testing mutual containment").
func ringStrictlyInside(a, b cycles.Ring) bool {
	if len(a.Vertices) == 0 || len(b.Vertices) == 0 {
		return false
	}
	return geom.PointInRing(a.Vertices[0], b.Vertices)
}
