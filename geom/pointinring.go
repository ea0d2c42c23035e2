package geom

// simdRingThreshold is the ring size (in edges) above which PointInRing
// dispatches to the 4-wide vectorized ray caster instead of the scalar
// loop. Matches the "~64 segments" figure from the hole-assignment design.
const simdRingThreshold = 64

// PointInRing reports whether pt lies inside the (assumed simple, closed)
// ring using the classic horizontal-ray parity test. Points on the
// boundary are treated as inside; this package never needs to distinguish
// boundary from interior because callers only query it after the input has
// been through snap-rounding.
//
// ring is a closed sequence of vertices (ring[0] == ring[len(ring)-1] or
// implicitly closed — both are accepted, the wraparound edge is always
// included).
func PointInRing(pt Point, ring []Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	if n-1 >= simdRingThreshold {
		return PointInRingBatch(pt, ring)
	}
	return pointInRingScalar(pt, ring)
}

func pointInRingScalar(pt Point, ring []Point) bool {
	n := len(ring)
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := ring[j], ring[i]

		if onBoundarySegment(pt, a, b) {
			return true
		}

		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xIntersect := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < xIntersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func onBoundarySegment(pt, a, b Point) bool {
	if Orient(a, b, pt) != 0 {
		return false
	}
	return onSegment(Segment{A: a, B: b}, pt)
}
