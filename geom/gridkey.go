package geom

import "math"

// GridKey is the integer identity of a point after snap-rounding to a fixed
// grid size: round(coord / gridSize) for each axis. Two snapped points are
// considered the same node iff their GridKeys are equal — identity is
// always decided by this integer pair, never by comparing floats.
type GridKey struct {
	X, Y int64
}

// SnapToGrid rounds p onto the grid defined by gridSize and returns its key.
func SnapToGrid(p Point, gridSize float64) GridKey {
	return GridKey{
		X: int64(math.Round(p.X / gridSize)),
		Y: int64(math.Round(p.Y / gridSize)),
	}
}

// Point reconstructs the float64 coordinate a GridKey represents at the
// given grid size. Snapping then reconstructing is idempotent: the result
// is exactly on the grid.
func (k GridKey) Point(gridSize float64) Point {
	return Point{
		X: float64(k.X) * gridSize,
		Y: float64(k.Y) * gridSize,
	}
}
