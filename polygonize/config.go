package polygonize

// Config configures a Polygonizer instance. It is set before the first
// Polygonize call and is read-only during execution; a later AddGeometry +
// Polygonize call reuses the same Config for an independent run (spec
// §4.6 "Calling polygonize() consumes the accumulated input but leaves
// configuration intact").
type Config struct {
	// NodeInput enables the Iterated Snap Rounding preprocessing stage.
	// Default false: callers who already know their input is noded skip it.
	NodeInput bool

	// SnapGridSize is the grid size used both by ISR (when enabled) and by
	// the planar graph's node-identity snapping (always applied, so two
	// inputs agreeing to within this tolerance always share a node).
	SnapGridSize float64

	// MaxIterations bounds the ISR loop (spec §4.2 step 7).
	MaxIterations int

	// NodingWorkers and HoleWorkers optionally parallelize the
	// embarrassingly-parallel per-segment and per-hole stages. Both
	// default to serial (<=1) so default output ordering is unaffected by
	// goroutine scheduling.
	NodingWorkers int
	HoleWorkers   int
}

// DefaultConfig returns the spec's defaults: node_input=false,
// snap_grid_size=1e-10, max_iterations=20.
func DefaultConfig() Config {
	return Config{
		NodeInput:     false,
		SnapGridSize:  1e-10,
		MaxIterations: 20,
		NodingWorkers: 1,
		HoleWorkers:   1,
	}
}
