package polygonize

// Diagnostics reports non-fatal conditions observed during a Polygonize
// run. The core never logs (spec §7): callers format or discard these
// fields themselves, the same shape as the teacher's
// pkg/v1/parallel.go LoadCellsParallel returning a collected []error
// instead of writing to a logger internally.
type Diagnostics struct {
	// SnapNonConverged is true if ISR hit MaxIterations without reaching a
	// fixpoint (spec §7 SnapNonConvergence). Always false when NodeInput
	// is false.
	SnapNonConverged bool

	// SnapIterations is how many ISR passes actually ran.
	SnapIterations int

	// OrphanedHoles counts hole rings that had no containing shell and
	// were discarded (spec §4.5 step 3).
	OrphanedHoles int

	// DegenerateRingsDiscarded counts rings whose |signed area| fell below
	// the grid-derived threshold and were dropped during classification
	// (spec §4.4 Step D).
	DegenerateRingsDiscarded int
}
