package noding

import (
	"testing"

	"github.com/graydonpleasants/geo-polygonize/geom"
)

func TestNodeAlreadyNoded(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{10, 0}},
		{A: geom.Point{10, 0}, B: geom.Point{10, 10}},
	}
	result, err := Node(segs, DefaultOptions())
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if !result.Converged {
		t.Fatalf("expected convergence on already-noded input")
	}
	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
}

func TestNodeCrossingSegmentsSplit(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{10, 10}},
		{A: geom.Point{0, 10}, B: geom.Point{10, 0}},
	}
	result, err := Node(segs, Options{GridSize: 1e-6, MaxIterations: 20, Workers: 1})
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if !result.Converged {
		t.Fatalf("expected convergence")
	}
	if len(result.Segments) != 4 {
		t.Fatalf("expected the X to split into 4 segments, got %d: %+v", len(result.Segments), result.Segments)
	}
}

func TestNodeCollinearOverlapDecomposes(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{2, 0}},
		{A: geom.Point{1, 0}, B: geom.Point{3, 0}},
	}
	result, err := Node(segs, Options{GridSize: 1e-6, MaxIterations: 20, Workers: 1})
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if !result.Converged {
		t.Fatalf("expected convergence")
	}
	// Endpoints 0, 1, 2, 3 on the X axis should produce exactly 3 disjoint
	// unit-length (or equivalent) pieces once deduplicated.
	if len(result.Segments) != 3 {
		t.Fatalf("expected 3 segments after overlap decomposition, got %d: %+v", len(result.Segments), result.Segments)
	}
}

func TestNodeZeroLengthSegmentDropped(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{5, 5}, B: geom.Point{5, 5}},
		{A: geom.Point{0, 0}, B: geom.Point{1, 1}},
	}
	result, err := Node(segs, DefaultOptions())
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if len(result.Segments) != 1 {
		t.Fatalf("expected zero-length segment to be dropped, got %d segments", len(result.Segments))
	}
}

func TestNodeMaxIterationsReported(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{10, 10}},
		{A: geom.Point{0, 10}, B: geom.Point{10, 0}},
	}
	result, err := Node(segs, Options{GridSize: 1e-6, MaxIterations: 1, Workers: 1})
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if result.Iterations > 1 {
		t.Fatalf("Iterations = %d, exceeds MaxIterations = 1", result.Iterations)
	}
}

func TestNodeParallelMatchesSerial(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{10, 10}},
		{A: geom.Point{0, 10}, B: geom.Point{10, 0}},
		{A: geom.Point{0, 5}, B: geom.Point{10, 5}},
	}
	serial, err := Node(segs, Options{GridSize: 1e-6, MaxIterations: 20, Workers: 1})
	if err != nil {
		t.Fatalf("Node (serial): %v", err)
	}
	parallel, err := Node(segs, Options{GridSize: 1e-6, MaxIterations: 20, Workers: 4})
	if err != nil {
		t.Fatalf("Node (parallel): %v", err)
	}

	if len(serial.Segments) != len(parallel.Segments) {
		t.Fatalf("serial produced %d segments, parallel produced %d", len(serial.Segments), len(parallel.Segments))
	}

	serialKeys := make(map[undirectedKey]bool)
	for _, s := range serial.Segments {
		serialKeys[undirectedKeyOf(geom.SnapToGrid(s.A, 1e-6), geom.SnapToGrid(s.B, 1e-6))] = true
	}
	for _, s := range parallel.Segments {
		k := undirectedKeyOf(geom.SnapToGrid(s.A, 1e-6), geom.SnapToGrid(s.B, 1e-6))
		if !serialKeys[k] {
			t.Fatalf("parallel produced a segment not present in serial output: %+v", s)
		}
	}
}

func TestVerifyNodedAcceptsSharedEndpoints(t *testing.T) {
	// Segments meeting only at shared endpoints (the normal post-noding
	// shape) must never be reported as a predicate failure.
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{1, 0}},
		{A: geom.Point{1, 0}, B: geom.Point{1, 1}},
	}
	if err := verifyNoded(segs); err != nil {
		t.Fatalf("verifyNoded: unexpected error for touching segments: %v", err)
	}
}

func TestVerifyNodedRejectsResidualCrossing(t *testing.T) {
	// Two segments that still properly cross must never reach this check
	// in practice (Node's own splitting would have resolved them), but
	// verifyNoded itself must detect the condition if it ever occurs.
	segs := []geom.Segment{
		{A: geom.Point{0, 0}, B: geom.Point{2, 2}},
		{A: geom.Point{0, 2}, B: geom.Point{2, 0}},
	}
	if err := verifyNoded(segs); err == nil {
		t.Fatalf("verifyNoded: expected an error for still-crossing segments")
	}
}
