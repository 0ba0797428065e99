package bound

import "github.com/briandleahy/globaloptimize/geometry"

// MaxVertexSimplexBound bounds a Simplex by taking its max-value vertex and
// the point-bound rule's value at the farthest distance from that vertex to
// any other vertex in the simplex: bound(S) = v*.Value - h(delta*), where
// v* is the max-value vertex and delta* is the largest distance from v* to
// any vertex of S (including v* itself, trivially zero).
type MaxVertexSimplexBound struct {
	pointBound PointBoundRule
}

// NewMaxVertexSimplexBound constructs a MaxVertexSimplexBound from a
// PointBoundRule.
func NewMaxVertexSimplexBound(pointBound PointBoundRule) *MaxVertexSimplexBound {
	return &MaxVertexSimplexBound{pointBound: pointBound}
}

// Bound returns a lower bound on the objective's value anywhere in s's
// convex hull.
func (r *MaxVertexSimplexBound) Bound(s geometry.Simplex) float64 {
	vMax := s.VertexWithMaxValue()

	delta := 0.0
	for _, v := range s.Vertices() {
		d := vMax.Point.Distance(v.Point)
		if d > delta {
			delta = d
		}
	}

	return vMax.Value - r.pointBound.At(delta)
}
