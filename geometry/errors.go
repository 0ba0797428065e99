package geometry

import (
	"errors"
	"fmt"
)

// SimplexErrorReason is a machine-readable classification of why a set of
// FunctionPoints failed to form a valid Simplex.
type SimplexErrorReason string

const (
	// ReasonWrongCount indicates the number of vertices did not equal
	// dimension+1.
	ReasonWrongCount SimplexErrorReason = "wrong_count"

	// ReasonNonScalarValue indicates a vertex's value was not a finite
	// scalar. Go's type system already forces Value to be a float64 (a
	// plain scalar), so this reason fires specifically when a value is
	// NaN or ±Inf rather than a "shape" violation.
	ReasonNonScalarValue SimplexErrorReason = "non_scalar_value"

	// ReasonInconsistentDimension indicates the vertices did not all
	// share the same point dimension.
	ReasonInconsistentDimension SimplexErrorReason = "inconsistent_dimension"
)

// InvalidSimplexError reports that a candidate set of FunctionPoints
// violates one of the Simplex invariants.
type InvalidSimplexError struct {
	Reason SimplexErrorReason
}

func (e *InvalidSimplexError) Error() string {
	return fmt.Sprintf("geometry: invalid simplex: %s", e.Reason)
}

// IsInvalidSimplex reports whether err is an *InvalidSimplexError with the
// given reason.
func IsInvalidSimplex(err error, reason SimplexErrorReason) bool {
	var invalid *InvalidSimplexError
	if !errors.As(err, &invalid) {
		return false
	}

	return invalid.Reason == reason
}

// ErrEmptyBounds is returned by TriangulateHyperrectangle when given no
// bounds (dimension zero).
var ErrEmptyBounds = errors.New("geometry: bounds must be non-empty")

// ErrInvalidBound is returned by TriangulateHyperrectangle when a bound's
// low edge is not strictly less than its high edge.
var ErrInvalidBound = errors.New("geometry: bound lo must be strictly less than hi")
