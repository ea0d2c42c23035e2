package geom

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// PointInRingBatch is the 4-wide vectorized counterpart of the scalar ray
// caster, used by PointInRing once a ring exceeds simdRingThreshold edges.
// It processes the ring's edges in Structure-of-Arrays form so go-highway
// can load, compare, and accumulate four edges per step, the same shape as
// the batch kernels this is grounded on (BaseBatchMinMax / BaseSTtoUVBatch
// in the akhenakh-geo S2 port).
//
// Parity is accumulated as a float sum of toggle events rather than a
// boolean XOR chain, since go-highway exposes arithmetic and IfThenElse
// selects but no portable boolean-mask XOR across lane widths; an odd
// total toggle count is equivalent to the scalar XOR-parity result.
func PointInRingBatch(pt Point, ring []Point) bool {
	n := len(ring)
	ax := make([]float64, n)
	ay := make([]float64, n)
	bx := make([]float64, n)
	by := make([]float64, n)

	j := n - 1
	for i := 0; i < n; i++ {
		if onBoundarySegment(pt, ring[j], ring[i]) {
			return true
		}
		ax[i], ay[i] = ring[j].X, ring[j].Y
		bx[i], by[i] = ring[i].X, ring[i].Y
		j = i
	}

	toggles := batchRayToggleCount(pt.X, pt.Y, ax, ay, bx, by)
	return math.Mod(toggles, 2) != 0
}

// batchRayToggleCount sums, across all n edges, 1.0 for every edge whose
// horizontal ray from pt crosses it (ay > py) != (by > py), and the
// crossing x-coordinate is greater than pt.X.
func batchRayToggleCount[T hwy.Floats](px, py T, ax, ay, bx, by []T) T {
	n := min(len(ax), len(ay), len(bx), len(by))

	vPx := hwy.Set(px)
	vPy := hwy.Set(py)
	vZero := hwy.Set(T(0))
	vOne := hwy.Set(T(1))

	var total T

	hwy.ProcessWithTail[T](n,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])

			total = hwy.Add(total, edgeToggleLanes(vPx, vPy, vZero, vOne, vAx, vAy, vBx, vBy))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])

			lanes := edgeToggleLanes(vPx, vPy, vZero, vOne, vAx, vAy, vBx, vBy)
			total = hwy.Add(total, hwy.IfThenElse(mask, lanes, vZero))
		},
	)

	return hwy.ReduceSum(total)
}

func edgeToggleLanes[T hwy.Floats](vPx, vPy, vZero, vOne T, vAx, vAy, vBx, vBy T) T {
	diffA := hwy.Sub(vAy, vPy)

	// Same straddle rule as the scalar loop, (ay > py) != (by > py), written
	// as (ay <= py) != (by <= py): each side becomes 1 or 0 and the squared
	// difference is 1 exactly where the two sides differ.
	belowA := hwy.IfThenElse(hwy.GreaterEqual(vPy, vAy), vOne, vZero)
	belowB := hwy.IfThenElse(hwy.GreaterEqual(vPy, vBy), vOne, vZero)
	side := hwy.Sub(belowA, belowB)
	crosses := hwy.Mul(side, side)

	// x-intercept of the edge at height py: ax + (py-ay)/(by-ay) * (bx-ax)
	t := hwy.Div(diffA, hwy.Sub(vAy, vBy))
	xIntersect := hwy.FMA(t, hwy.Sub(vBx, vAx), vAx)

	// Toggle only where the intercept lies strictly right of pt (px < x).
	return hwy.IfThenElse(hwy.GreaterEqual(vPx, xIntersect), vZero, crosses)
}
