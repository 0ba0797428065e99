// Package geometry defines the point, function-point, and simplex types the
// optimizer searches over, plus the one black-box service the driver
// consumes to produce an initial cover of the search domain: triangulating
// a hyperrectangle into simplices.
//
// Overview:
//
//   - Point is an immutable ordered tuple of reals (a []float64 under the
//     hood, copied on construction so callers cannot mutate it after the
//     fact).
//   - FunctionPoint pairs a Point with the objective's value there. It is
//     the unit of ownership shared across simplices: branching reuses the
//     same FunctionPoint in multiple child simplices rather than copying it.
//   - Simplex is exactly dimension+1 FunctionPoints. Construction validates
//     vertex count, per-vertex dimension, and value well-formedness; a
//     malformed set of vertices fails fast with an *InvalidSimplexError
//     instead of producing a Simplex whose invariants silently don't hold.
//   - TriangulateHyperrectangle discharges the "initial triangulation"
//     external-service contract with one concrete, deterministic algorithm
//     (Kuhn/Freudenthal triangulation of the box into d! simplices), rather
//     than depending on an external computational-geometry library.
//
// Determinism:
//
//   - VertexWithMaxValue and VertexWithMinValue break ties by first
//     occurrence (lowest index) so that repeated calls against the same
//     Simplex, and searches built on top of them, are reproducible.
//   - TriangulateHyperrectangle visits corners and permutations in a fixed,
//     sorted order, so the same (objective, bounds) pair always yields the
//     same simplex list in the same order.
//
// Complexity:
//
//   - Simplex construction and vertex queries: O(d) per call, where d is
//     the dimension.
//   - TriangulateHyperrectangle: O(2^d) objective evaluations (one per box
//     corner) plus O(d! * d) work building the d! simplices. This is only
//     ever run once, at the start of a search, so the factorial cost is
//     acceptable for the dimensions branch-and-bound search is practical
//     for in the first place; it is not on the per-branch-step hot path.
package geometry
