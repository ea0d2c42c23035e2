package cycles

import "math"

// Classify implements spec §4.4 Step D: rings with positive signed area
// are shell candidates, negative area are hole candidates. Degenerate
// rings, with |area| below minArea, are discarded outright — they never
// appear in either returned slice.
func Classify(rings []Ring, minArea float64) (shells, holes []Ring) {
	for _, r := range rings {
		if math.Abs(r.Area) < minArea {
			continue
		}
		if r.Area > 0 {
			shells = append(shells, r)
		} else {
			holes = append(holes, r)
		}
	}
	return shells, holes
}

// MinAreaForGrid derives the degenerate-ring area threshold from the
// snap-rounding grid size: a ring that couldn't enclose a handful of grid
// cells is numerical noise from the noder, not a real face.
func MinAreaForGrid(gridSize float64) float64 {
	return 4 * gridSize * gridSize
}
