// Package noding implements Iterated Snap Rounding (ISR): given a set of
// possibly-crossing input segments and a grid size, it produces a set of
// non-crossing, grid-snapped segments suitable for bulk-loading into a
// planar graph. Grounded on the teacher's rtreego-backed spatial indexing
// (pkg/s57/index.go's ChartIndex), generalized from "index charts, query by
// bounds" to "index segments, query candidate intersections".
package noding

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/graydonpleasants/geo-polygonize/geom"
)

// Options configures a noding run.
type Options struct {
	GridSize      float64
	MaxIterations int

	// Workers, when > 1, parallelizes the per-segment candidate-intersection
	// pass across goroutines. Each segment index writes only its own slot of
	// a pre-sized results slice, and splitting and deduplication then run
	// serially in input order (see nodeOnePass), so enabling it does not
	// change the output.
	Workers int
}

// DefaultOptions returns the spec's defaults: grid size 1e-10, 20 max
// iterations, serial execution.
func DefaultOptions() Options {
	return Options{
		GridSize:      1e-10,
		MaxIterations: 20,
		Workers:       1,
	}
}

// Result is the outcome of a Node call.
type Result struct {
	Segments   []geom.Segment
	Converged  bool
	Iterations int
}

// segEntry adapts a segment to rtreego.Spatial for the dynamic index.
type segEntry struct {
	seg geom.Segment
}

func (e segEntry) Bounds() rtreego.Rect {
	minX, maxX := e.seg.A.X, e.seg.B.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := e.seg.A.Y, e.seg.B.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	// rtreego requires strictly positive rectangle extents; degenerate
	// (vertical/horizontal) segments get an epsilon pad on that axis.
	const epsilon = 1e-9
	w := maxX - minX
	if w <= 0 {
		w = epsilon
	}
	h := maxY - minY
	if h <= 0 {
		h = epsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{w, h})
	return rect
}

// Node runs Iterated Snap Rounding to a fixpoint or Options.MaxIterations,
// whichever comes first. The returned Converged flag is false only when the
// iteration cap was hit; this is never a hard failure (spec §4.2 step 7) —
// the caller surfaces it as a SnapNonConvergence diagnostic.
//
// Once a fixpoint is reached, the result is verified to actually be free of
// crossings: a converged output with two segments that still properly cross
// or overlap would mean the exact predicates and the splitting logic above
// disagreed about what "noded" means, which should be impossible given the
// robustness guarantees of package geom. That condition is reported as an
// error (spec §7 PredicateFailure) rather than silently handed to the
// planar graph builder.
func Node(segments []geom.Segment, opts Options) (Result, error) {
	if opts.GridSize <= 0 {
		opts.GridSize = DefaultOptions().GridSize
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions().MaxIterations
	}

	current := snapEndpoints(segments, opts.GridSize)

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		next, changed := nodeOnePass(current, opts)
		current = next
		if !changed {
			if err := verifyNoded(current); err != nil {
				return Result{Segments: current, Converged: true, Iterations: iter}, err
			}
			return Result{Segments: current, Converged: true, Iterations: iter}, nil
		}
	}

	return Result{Segments: current, Converged: false, Iterations: opts.MaxIterations}, nil
}

// verifyNoded asserts that no two segments in a converged result properly
// cross or collinearly overlap. Shared endpoints (Touch) are expected and
// not checked here; only Cross and Overlap indicate the noder left an
// intersection unresolved.
func verifyNoded(segments []geom.Segment) error {
	if len(segments) < 2 {
		return nil
	}

	tree := rtreego.NewTree(2, 4, 16)
	for _, s := range segments {
		tree.Insert(segEntry{seg: s})
	}

	for _, s := range segments {
		candidates := tree.SearchIntersect(segEntry{seg: s}.Bounds())
		for _, c := range candidates {
			other := c.(segEntry).seg
			if other == s {
				continue
			}
			switch geom.Intersect(s, other).Kind {
			case geom.Cross:
				return fmt.Errorf("noding: segments %v and %v still cross after convergence", s, other)
			case geom.Overlap:
				return fmt.Errorf("noding: segments %v and %v still collinearly overlap after convergence", s, other)
			}
		}
	}
	return nil
}

// snapEndpoints rounds every segment's endpoints onto the grid and drops
// any that collapse to a single node (zero-length after snapping).
func snapEndpoints(segments []geom.Segment, gridSize float64) []geom.Segment {
	out := make([]geom.Segment, 0, len(segments))
	for _, s := range segments {
		a := geom.SnapToGrid(s.A, gridSize).Point(gridSize)
		b := geom.SnapToGrid(s.B, gridSize).Point(gridSize)
		ak := geom.SnapToGrid(a, gridSize)
		bk := geom.SnapToGrid(b, gridSize)
		if ak == bk {
			continue
		}
		out = append(out, geom.Segment{A: a, B: b})
	}
	return out
}

// nodeOnePass performs one round of the ISR loop (spec §4.2 steps 2-6):
// build an index, find all intersections, split at snapped intersection
// points, and deduplicate. Returns whether any new split occurred.
func nodeOnePass(segments []geom.Segment, opts Options) ([]geom.Segment, bool) {
	if len(segments) == 0 {
		return segments, false
	}

	tree := rtreego.NewTree(2, 4, 16)
	for _, s := range segments {
		tree.Insert(segEntry{seg: s})
	}

	splitPoints := make([][]geom.Point, len(segments))

	work := func(i int) {
		s := segments[i]
		candidates := tree.SearchIntersect(segEntry{seg: s}.Bounds())
		var pts []geom.Point
		for _, c := range candidates {
			other := c.(segEntry).seg
			if other == s {
				continue
			}
			pts = append(pts, intersectionPoints(s, other)...)
		}
		splitPoints[i] = pts
	}

	runParallel(len(segments), opts.Workers, work)

	var result []geom.Segment
	changed := false
	seen := make(map[undirectedKey]bool)

	for i, s := range segments {
		snapped := snapSplitPoints(splitPoints[i], opts.GridSize)
		pieces := splitSegment(s, snapped, opts.GridSize)
		if len(pieces) != 1 {
			changed = true
		}
		for _, p := range pieces {
			ak := geom.SnapToGrid(p.A, opts.GridSize)
			bk := geom.SnapToGrid(p.B, opts.GridSize)
			if ak == bk {
				continue
			}
			key := undirectedKeyOf(ak, bk)
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, p)
		}
	}

	return result, changed
}

// intersectionPoints returns the interesting points produced by
// intersecting s with other: crossing/touch points directly, or the
// endpoints of a collinear overlap (which is how the spec's "decompose
// collinear overlaps into a chain of endpoints" rule is realized — the
// overlap's own endpoints become split points for both segments).
func intersectionPoints(s, other geom.Segment) []geom.Point {
	ik := geom.Intersect(s, other)
	switch ik.Kind {
	case geom.Cross, geom.Touch:
		return []geom.Point{ik.Point}
	case geom.Overlap:
		return []geom.Point{ik.Seg.A, ik.Seg.B}
	default:
		return nil
	}
}

func snapSplitPoints(pts []geom.Point, gridSize float64) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		out = append(out, geom.SnapToGrid(p, gridSize).Point(gridSize))
	}
	return out
}

// splitSegment splits s at every snapped point that lies on it (within
// grid tolerance), returning the ordered sub-segments. Points off the
// segment, or coincident with an existing endpoint, are ignored.
func splitSegment(s geom.Segment, points []geom.Point, gridSize float64) []geom.Segment {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	useX := abs64(dx) >= abs64(dy)

	param := func(p geom.Point) float64 {
		if useX {
			if dx == 0 {
				return 0
			}
			return (p.X - s.A.X) / dx
		}
		if dy == 0 {
			return 0
		}
		return (p.Y - s.A.Y) / dy
	}

	type cut struct {
		t float64
		p geom.Point
	}
	cuts := []cut{{0, s.A}, {1, s.B}}

	tol := gridSize / 2
	for _, p := range points {
		t := param(p)
		if t <= 0+1e-12 || t >= 1-1e-12 {
			continue
		}
		if !onSegmentWithin(s, p, tol) {
			continue
		}
		cuts = append(cuts, cut{t, p})
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].t < cuts[j].t })

	out := make([]geom.Segment, 0, len(cuts)-1)
	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i].p, cuts[i+1].p
		if a.Equal(b) {
			continue
		}
		out = append(out, geom.Segment{A: a, B: b})
	}
	if len(out) == 0 {
		return []geom.Segment{s}
	}
	return out
}

func onSegmentWithin(s geom.Segment, p geom.Point, tol float64) bool {
	// Distance from p to the infinite line through s must be within
	// tolerance of the grid; the span along s is not checked here (the
	// caller's parameter test already keeps p strictly between s's ends).
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	length := s.A.Dist(s.B)
	if length == 0 {
		return false
	}
	cross := (p.X-s.A.X)*dy - (p.Y-s.A.Y)*dx
	dist := abs64(cross) / length
	return dist <= tol
}

type undirectedKey struct {
	AX, AY, BX, BY int64
}

func undirectedKeyOf(a, b geom.GridKey) undirectedKey {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	return undirectedKey{a.X, a.Y, b.X, b.Y}
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
