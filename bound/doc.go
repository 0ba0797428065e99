// Package bound computes lower bounds on an objective's value from
// Lipschitz-type smoothness assumptions, the core pruning machinery a
// branch-and-bound search uses to discard simplices that cannot contain a
// better optimum than the current incumbent.
//
// Two related but distinct bounds are provided, mirroring the two ways the
// search consults smoothness information:
//
//   - PointBoundRule bounds the objective's value at a single point, given
//     a known function value nearby and a separation distance. This is the
//     "distance between two points" form: h(delta) below.
//   - SimplexBoundRule bounds the minimum value the objective can take
//     anywhere inside a Simplex, given the values already known at its
//     vertices.
//
// Both rules are defined in terms of two non-negative Lipschitz constants:
// Lf bounds how fast the objective itself can change with distance, and Lg
// bounds how fast the objective's gradient can change with distance (i.e.
// the objective is assumed to have an Lg-Lipschitz gradient). A rule may be
// given either constant as +Inf to signal "no information available on
// this constant", degrading its bound accordingly rather than failing.
//
// OrdinaryPointBound implements the piecewise point bound: quadratic in
// delta below a cutoff where the gradient-smoothness term dominates, linear
// above it where the raw Lipschitz term dominates, continuous at the
// cutoff. MaxVertexSimplexBound implements the simplex bound from the
// max-value vertex alone: its value minus h at the largest distance from
// that vertex to any vertex of the simplex.
package bound
