// Package geom provides the 2D geometric primitives and predicates that the
// rest of the polygonization pipeline is built on: points, segments, the
// orientation and intersection predicates, and ray-casting containment
// tests. Nothing in this package depends on anything else in the module.
package geom

import "math"

// Point is an ordered pair of finite 64-bit floats.
type Point struct {
	X, Y float64
}

// Equal reports whether p and q have identical coordinates. This is a raw
// float comparison; within the graph, identity is decided by grid-snapped
// keys instead (see GridKey and SnapToGrid), never by this method.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Finite reports whether both coordinates are finite (not NaN or Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Hypot(dx, dy)
}
