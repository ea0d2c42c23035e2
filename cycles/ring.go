// Package cycles extracts the minimal face rings implied by a planar
// graph: it prunes dangling and cut edges, then walks the graph along
// minimum-angle turns to assemble closed rings, and classifies each ring
// as a shell or hole candidate by signed area. Grounded on the teacher's
// internal/parser/topology.go topology-walk (resolvePolygon /
// buildRingsWithOrientation), generalized from "follow FSPT edge order"
// to "follow angular order at each node".
package cycles

import (
	"github.com/graydonpleasants/geo-polygonize/geom"
	"github.com/graydonpleasants/geo-polygonize/planar"
)

// Ring is a closed cyclic sequence of half-edges forming a face boundary.
type Ring struct {
	ID        int32
	HalfEdges []planar.HalfEdgeIndex
	Vertices  []geom.Point // closed: Vertices[0] == Vertices[len-1]
	Area      float64      // signed; positive == CCW == shell candidate
	Bounds    geom.Bounds
}

// IsShell reports whether the ring's winding makes it a shell candidate.
func (r Ring) IsShell() bool { return r.Area > 0 }

func signedArea(pts []geom.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
