// Package polygonize is the public façade: it accumulates input
// geometries, orchestrates the noding, planar-graph, cycle-extraction and
// hole-assignment stages in order, and returns the reconstructed polygons.
// Grounded on the teacher's pkg/s57.Parser / pkg/v1 façade shape — a small
// interface-free struct wrapping an internal pipeline, configured via a
// plain options struct with a Default constructor.
package polygonize

import (
	"math"

	"github.com/graydonpleasants/geo-polygonize/cycles"
	"github.com/graydonpleasants/geo-polygonize/geom"
	"github.com/graydonpleasants/geo-polygonize/holes"
	"github.com/graydonpleasants/geo-polygonize/noding"
	"github.com/graydonpleasants/geo-polygonize/planar"
)

// Polygon is one shell ring plus its assigned holes, expressed as a
// closed, ordered vertex sequence — the public shape callers consume.
type Polygon struct {
	Shell []geom.Point
	Holes [][]geom.Point
}

// Polygonizer accumulates input segments and reconstructs valid,
// topologically correct polygons from them. The zero value is not usable;
// construct with New.
type Polygonizer struct {
	config   Config
	segments []geom.Segment
}

// New creates a Polygonizer with the given configuration.
func New(cfg Config) *Polygonizer {
	if cfg.SnapGridSize <= 0 {
		cfg.SnapGridSize = DefaultConfig().SnapGridSize
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	return &Polygonizer{config: cfg}
}

// AddGeometry decomposes a LineString (or a closed ring — the two are
// treated identically, a sequence of points) into its constituent segments
// and accumulates them. Rejects fewer than two distinct points or any
// non-finite coordinate at ingest time (spec §7 InvalidInput), rather than
// deferring validation to Polygonize.
func (p *Polygonizer) AddGeometry(points []geom.Point) error {
	if len(points) < 2 {
		return &ErrInvalidInput{Reason: "line string has fewer than 2 points"}
	}
	for _, pt := range points {
		if !pt.Finite() {
			return &ErrInvalidInput{Reason: "coordinate is NaN or infinite"}
		}
	}

	distinct := 0
	for i := 1; i < len(points); i++ {
		if !points[i].Equal(points[i-1]) {
			distinct++
		}
	}
	if distinct == 0 {
		return &ErrInvalidInput{Reason: "line string has fewer than 2 distinct points"}
	}

	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if a.Equal(b) {
			continue
		}
		p.segments = append(p.segments, geom.Segment{A: a, B: b})
	}
	return nil
}

// AddGeometries is a convenience wrapper for a collection of LineStrings,
// matching the "LineString or a collection thereof" input shape of spec
// §6.
func (p *Polygonizer) AddGeometries(lineStrings [][]geom.Point) error {
	for _, ls := range lineStrings {
		if err := p.AddGeometry(ls); err != nil {
			return err
		}
	}
	return nil
}

// Polygonize runs the four core stages — noding, graph construction, cycle
// extraction, hole assignment — over the accumulated input and returns the
// reconstructed polygons. It consumes the accumulated input (a subsequent
// AddGeometry + Polygonize call starts from empty) but leaves Config
// untouched, per spec §4.6.
func (p *Polygonizer) Polygonize() ([]Polygon, Diagnostics, error) {
	segments := p.segments
	p.segments = nil

	var diag Diagnostics

	if len(segments) == 0 {
		return nil, diag, &ErrEmptyInput{}
	}

	gridSize := p.config.SnapGridSize

	if p.config.NodeInput {
		result, err := noding.Node(segments, noding.Options{
			GridSize:      gridSize,
			MaxIterations: p.config.MaxIterations,
			Workers:       p.config.NodingWorkers,
		})
		if err != nil {
			return nil, diag, &ErrPredicateFailure{Detail: err.Error()}
		}
		segments = result.Segments
		diag.SnapIterations = result.Iterations
		diag.SnapNonConverged = !result.Converged
	}

	graph := planar.BuildGraph(segments, gridSize)

	cycles.RemoveDangles(graph)
	rings := cycles.AssembleRings(graph)
	rings = cycles.RemoveCutEdges(graph, rings)

	minArea := cycles.MinAreaForGrid(gridSize)
	shellRings, holeRings := cycles.Classify(rings, minArea)
	diag.DegenerateRingsDiscarded = countDegenerate(rings, minArea)

	if len(shellRings) == 0 {
		return nil, diag, &ErrDegenerateGraph{}
	}

	assigned, orphaned := holes.Assign(shellRings, holeRings, holes.Options{
		Workers: p.config.HoleWorkers,
	})
	diag.OrphanedHoles = len(orphaned)

	polys := make([]Polygon, len(assigned))
	for i, a := range assigned {
		polys[i] = Polygon{
			Shell: a.Shell.Vertices,
			Holes: make([][]geom.Point, len(a.Holes)),
		}
		for j, h := range a.Holes {
			polys[i].Holes[j] = h.Vertices
		}
	}

	return polys, diag, nil
}

func countDegenerate(rings []cycles.Ring, minArea float64) int {
	n := 0
	for _, r := range rings {
		if math.Abs(r.Area) < minArea {
			n++
		}
	}
	return n
}
