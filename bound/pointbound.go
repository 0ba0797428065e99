package bound

import "math"

// OrdinaryPointBound is the piecewise distance-bound function derived from
// a function-Lipschitz constant Lf and a gradient-Lipschitz constant Lg:
// quadratic in delta below a cutoff, linear above it, continuous at the
// cutoff. Either constant may be +Inf to signal "no information", in which
// case the bound degrades to the pure linear or pure quadratic form.
type OrdinaryPointBound struct {
	lf, lg float64
	cutoff float64
	offset float64
}

// NewOrdinaryPointBound constructs an OrdinaryPointBound from the two
// Lipschitz constants. Both must be non-negative (+Inf is allowed); a
// negative value returns ErrNegativeLipschitzConstant.
func NewOrdinaryPointBound(lf, lg float64) (*OrdinaryPointBound, error) {
	if lf < 0 || lg < 0 {
		return nil, ErrNegativeLipschitzConstant
	}

	cutoff := cutoffOf(lf, lg)
	offset := offsetOf(lf, lg)

	return &OrdinaryPointBound{lf: lf, lg: lg, cutoff: cutoff, offset: offset}, nil
}

func cutoffOf(lf, lg float64) float64 {
	switch {
	case lf == 0 && lg == 0:
		return 0
	case math.IsInf(lg, 1) && !math.IsInf(lf, 1):
		return 0
	case math.IsInf(lf, 1) && !math.IsInf(lg, 1):
		return math.Inf(1)
	case math.IsInf(lf, 1) && math.IsInf(lg, 1):
		// Both unconstrained: degenerate, and cutoff = Lf/Lg is the
		// indeterminate Inf/Inf. Stored as +Inf, but At never consults
		// it here: its Lg=+Inf branch applies and returns Lf*delta.
		return math.Inf(1)
	default:
		return lf / lg
	}
}

func offsetOf(lf, lg float64) float64 {
	if math.IsInf(lg, 1) {
		return 0
	}
	if lg == 0 {
		return 0
	}

	return lf * lf / (2 * lg)
}

// At returns h(delta). delta must be non-negative.
func (b *OrdinaryPointBound) At(delta float64) float64 {
	if math.IsInf(b.lg, 1) {
		return b.lf * delta
	}
	if math.IsInf(b.lf, 1) {
		return 0.5 * b.lg * delta * delta
	}
	if delta < b.cutoff {
		return 0.5 * b.lg * delta * delta
	}

	return b.lf*delta - b.offset
}
