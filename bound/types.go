package bound

import "github.com/briandleahy/globaloptimize/geometry"

// PointBoundRule computes h(delta), an upper bound on |f(x) - f(y)|
// whenever ||x-y|| = delta, for some family of smoothness assumptions on f.
type PointBoundRule interface {
	// At returns h(delta). delta must be non-negative.
	At(delta float64) float64
}

// SimplexBoundRule converts a Simplex into a scalar lower bound on the
// objective over its convex hull.
type SimplexBoundRule interface {
	Bound(s geometry.Simplex) float64
}
