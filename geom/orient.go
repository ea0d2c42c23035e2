package geom

import "math/big"

// Orient computes the sign of the cross product (q-p) x (r-p): positive
// when p, q, r turn counter-clockwise, negative when clockwise, zero when
// collinear. It is antisymmetric: Orient(p, q, r) == -Orient(q, p, r).
//
// The plain float64 cross product loses precision near-collinear inputs;
// when that happens we fall back to an exact big.Rat recomputation so that truly
// non-collinear points are never misreported as collinear. This is cheaper
// than a full adaptive-precision expansion but sufficient once input has
// been snap-rounded onto a fixed grid, where OrientGrid below is preferred.
func Orient(p, q, r Point) int {
	qpx, qpy := q.X-p.X, q.Y-p.Y
	rpx, rpy := r.X-p.X, r.Y-p.Y

	det := qpx*rpy - qpy*rpx

	// Error bound for the double-precision cross product (Shewchuk-style
	// static filter): if |det| clears this bound, the float64 sign is
	// trustworthy and we skip the expensive exact recomputation.
	errBound := 1e-12 * (abs(qpx)*abs(rpy) + abs(qpy)*abs(rpx) + 1e-300)
	if abs(det) > errBound {
		return sign(det)
	}

	return orientExact(p, q, r)
}

// orientExact recomputes the orientation determinant using arbitrary
// precision rationals, guaranteeing a correct sign (never a false zero for
// truly non-collinear points representable as float64).
func orientExact(p, q, r Point) int {
	qpx := new(big.Rat).Sub(new(big.Rat).SetFloat64(q.X), new(big.Rat).SetFloat64(p.X))
	qpy := new(big.Rat).Sub(new(big.Rat).SetFloat64(q.Y), new(big.Rat).SetFloat64(p.Y))
	rpx := new(big.Rat).Sub(new(big.Rat).SetFloat64(r.X), new(big.Rat).SetFloat64(p.X))
	rpy := new(big.Rat).Sub(new(big.Rat).SetFloat64(r.Y), new(big.Rat).SetFloat64(p.Y))

	left := new(big.Rat).Mul(qpx, rpy)
	right := new(big.Rat).Mul(qpy, rpx)
	det := new(big.Rat).Sub(left, right)

	switch det.Sign() {
	case 1:
		return 1
	case -1:
		return -1
	default:
		return 0
	}
}

// OrientGrid is the integer-arithmetic counterpart of Orient, used once
// coordinates are known to be exact grid multiples (post snap-rounding).
// The coordinate differences are taken in int64 and both products are
// always computed in big.Int, so no floating-point rounding enters the
// predicate.
func OrientGrid(p, q, r GridKey) int {
	qpx, qpy := q.X-p.X, q.Y-p.Y
	rpx, rpy := r.X-p.X, r.Y-p.Y

	// Widen the multiplication into big.Int to guard against int64
	// overflow on inputs spanning a wide bounding box at fine grid size.
	left := new(big.Int).Mul(big.NewInt(qpx), big.NewInt(rpy))
	right := new(big.Int).Mul(big.NewInt(qpy), big.NewInt(rpx))
	det := left.Sub(left, right)

	return det.Sign()
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
