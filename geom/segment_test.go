package geom

import "testing"

func TestIntersectDisjoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 0}}
	s2 := Segment{Point{0, 1}, Point{1, 1}}
	got := Intersect(s1, s2)
	if got.Kind != Disjoint {
		t.Fatalf("got kind %v, want Disjoint", got.Kind)
	}
}

func TestIntersectCross(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 2}}
	s2 := Segment{Point{0, 2}, Point{2, 0}}
	got := Intersect(s1, s2)
	if got.Kind != Cross {
		t.Fatalf("got kind %v, want Cross", got.Kind)
	}
	if !got.Point.Equal(Point{1, 1}) {
		t.Fatalf("got point %v, want (1,1)", got.Point)
	}
}

func TestIntersectTouchAtEndpoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 1}}
	s2 := Segment{Point{1, 1}, Point{2, 0}}
	got := Intersect(s1, s2)
	if got.Kind != Touch {
		t.Fatalf("got kind %v, want Touch", got.Kind)
	}
	if !got.Point.Equal(Point{1, 1}) {
		t.Fatalf("got point %v, want (1,1)", got.Point)
	}
}

func TestIntersectCollinearOverlap(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 0}}
	s2 := Segment{Point{1, 0}, Point{3, 0}}
	got := Intersect(s1, s2)
	if got.Kind != Overlap {
		t.Fatalf("got kind %v, want Overlap", got.Kind)
	}
	if got.Seg.A.Equal(got.Seg.B) {
		t.Fatalf("overlap segment degenerate: %v", got.Seg)
	}
}

func TestIntersectCollinearDisjoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 0}}
	s2 := Segment{Point{2, 0}, Point{3, 0}}
	got := Intersect(s1, s2)
	if got.Kind != Disjoint {
		t.Fatalf("got kind %v, want Disjoint", got.Kind)
	}
}

func TestBoundsOf(t *testing.T) {
	pts := []Point{{0, 0}, {3, -1}, {-2, 4}}
	b := BoundsOf(pts)
	if b.MinX != -2 || b.MinY != -1 || b.MaxX != 3 || b.MaxY != 4 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
}

func TestBoundsIntersects(t *testing.T) {
	a := Bounds{0, 0, 2, 2}
	b := Bounds{1, 1, 3, 3}
	c := Bounds{5, 5, 6, 6}
	if !a.Intersects(b) {
		t.Fatalf("expected a, b to intersect")
	}
	if a.Intersects(c) {
		t.Fatalf("expected a, c to be disjoint")
	}
}
