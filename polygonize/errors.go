package polygonize

import "fmt"

// ErrEmptyInput indicates Polygonize was called with no accumulated
// segments (spec §7 EmptyInput).
type ErrEmptyInput struct{}

func (e *ErrEmptyInput) Error() string {
	return "polygonize: no input geometry accumulated"
}

// ErrDegenerateGraph indicates that after noding and pruning, zero rings
// remained (spec §7 DegenerateGraph). Not fatal to the process — callers
// may legitimately expect this for tree-shaped or single-dangle input.
type ErrDegenerateGraph struct{}

func (e *ErrDegenerateGraph) Error() string {
	return "polygonize: no closed rings found in the noded input"
}

// ErrInvalidInput indicates a rejected add_geometry call: fewer than two
// distinct points, a NaN/infinite coordinate, or similarly malformed input
// (spec §7 InvalidInput).
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("polygonize: invalid input geometry: %s", e.Reason)
}

// ErrPredicateFailure indicates an assertion inside an exact geometric
// predicate tripped. This should be impossible given the robustness
// guarantees of package geom; it is reported, not silently swallowed, to
// aid debugging (spec §7 PredicateFailure).
type ErrPredicateFailure struct {
	Detail string
}

func (e *ErrPredicateFailure) Error() string {
	return fmt.Sprintf("polygonize: predicate failure: %s", e.Detail)
}
