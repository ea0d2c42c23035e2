package geom

import "math"

// Segment is an ordered pair of distinct points. Directionality matters
// only inside the planar graph's half-edge structure; on raw input a
// Segment is simply an undirected edge candidate.
type Segment struct {
	A, B Point
}

// IntersectKindTag discriminates the variants of IntersectKind. There is no
// inheritance here: callers switch on Kind and read the matching field.
type IntersectKindTag int

const (
	Disjoint IntersectKindTag = iota
	Touch                     // endpoint-only contact
	Cross                     // proper interior crossing
	Overlap                   // collinear overlap
)

// IntersectKind is the tagged result of intersecting two segments. Exactly
// one of Point or Seg is meaningful, selected by Kind.
type IntersectKind struct {
	Kind  IntersectKindTag
	Point Point   // valid for Touch, Cross
	Seg   Segment // valid for Overlap
}

// Intersect classifies how s1 and s2 relate. Proper crossing points are
// computed in double precision; callers snap them to the grid themselves
// (this package has no notion of a grid).
func Intersect(s1, s2 Segment) IntersectKind {
	d1 := Orient(s2.A, s2.B, s1.A)
	d2 := Orient(s2.A, s2.B, s1.B)
	d3 := Orient(s1.A, s1.B, s2.A)
	d4 := Orient(s1.A, s1.B, s2.B)

	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		return intersectCollinear(s1, s2)
	}

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		pt, ok := lineIntersection(s1, s2)
		if !ok {
			return IntersectKind{Kind: Disjoint}
		}
		return IntersectKind{Kind: Cross, Point: pt}
	}

	// Touch: one or more of the orientation tests is exactly zero and the
	// corresponding endpoint lies on the other segment.
	if d1 == 0 && onSegment(s2, s1.A) {
		return IntersectKind{Kind: Touch, Point: s1.A}
	}
	if d2 == 0 && onSegment(s2, s1.B) {
		return IntersectKind{Kind: Touch, Point: s1.B}
	}
	if d3 == 0 && onSegment(s1, s2.A) {
		return IntersectKind{Kind: Touch, Point: s2.A}
	}
	if d4 == 0 && onSegment(s1, s2.B) {
		return IntersectKind{Kind: Touch, Point: s2.B}
	}

	return IntersectKind{Kind: Disjoint}
}

func onSegment(s Segment, p Point) bool {
	minX, maxX := math.Min(s.A.X, s.B.X), math.Max(s.A.X, s.B.X)
	minY, maxY := math.Min(s.A.Y, s.B.Y), math.Max(s.A.Y, s.B.Y)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func lineIntersection(s1, s2 Segment) (Point, bool) {
	x1, y1 := s1.A.X, s1.A.Y
	x2, y2 := s1.B.X, s1.B.Y
	x3, y3 := s2.A.X, s2.A.Y
	x4, y4 := s2.B.X, s2.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	t := tNum / denom

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}

// intersectCollinear handles the case where all four orientation tests are
// zero: s1 and s2 lie on the same line. Returns Overlap if their parameter
// ranges along that line intersect in more than a point, Touch if they meet
// at exactly one shared endpoint, or Disjoint otherwise.
func intersectCollinear(s1, s2 Segment) IntersectKind {
	// Project onto the dominant axis to parametrize both segments.
	dx, dy := s1.B.X-s1.A.X, s1.B.Y-s1.A.Y
	useX := math.Abs(dx) >= math.Abs(dy)

	param := func(p Point) float64 {
		if useX {
			return p.X
		}
		return p.Y
	}

	a0, a1 := param(s1.A), param(s1.B)
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	b0, b1 := param(s2.A), param(s2.B)
	if b0 > b1 {
		b0, b1 = b1, b0
	}

	lo := math.Max(a0, b0)
	hi := math.Min(a1, b1)

	if lo > hi {
		return IntersectKind{Kind: Disjoint}
	}
	if lo == hi {
		pt := pointAtParam(s1, lo, useX)
		return IntersectKind{Kind: Touch, Point: pt}
	}

	return IntersectKind{
		Kind: Overlap,
		Seg: Segment{
			A: pointAtParam(s1, lo, useX),
			B: pointAtParam(s1, hi, useX),
		},
	}
}

func pointAtParam(s Segment, v float64, useX bool) Point {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	if useX {
		if dx == 0 {
			return Point{X: v, Y: s.A.Y}
		}
		t := (v - s.A.X) / dx
		return Point{X: v, Y: s.A.Y + t*dy}
	}
	if dy == 0 {
		return Point{X: s.A.X, Y: v}
	}
	t := (v - s.A.Y) / dy
	return Point{X: s.A.X + t*dx, Y: v}
}
