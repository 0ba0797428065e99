// Package globaloptimize performs deterministic global minimization of a
// real-valued, multivariate objective function over a bounded
// hyperrectangular domain, using branch-and-bound on a simplicial
// partition of the domain guided by Lipschitz-style lower bounds.
//
// Given an objective, a box domain (triangulated into simplices by
// geometry.TriangulateHyperrectangle), and Lipschitz constants on the
// function and its gradient (bound.NewOrdinaryPointBound), an
// optimize.Optimizer returns a point whose value is within a
// user-specified tolerance of the true global minimum, or the best
// candidate found before a function-evaluation budget is exhausted.
//
// The module is organized under four subpackages:
//
//	queue/    — a generic min-priority queue over (object, value) pairs
//	geometry/ — Point, FunctionPoint, Simplex, and hyperrectangle triangulation
//	bound/    — Lipschitz-derived lower bounds, per-point and per-simplex
//	optimize/ — the branch-and-bound driver tying the above together
//
// A minimal search:
//
//	bounds := []geometry.Bound{{Lo: -1, Hi: 1}}
//	simplices, _ := geometry.TriangulateHyperrectangle(bounds, f)
//	h, _ := bound.NewOrdinaryPointBound(lf, lg)
//	rule := bound.NewMaxVertexSimplexBound(h)
//	o, _ := optimize.New(f, simplices, rule)
//	result := o.Optimize(context.Background(), 1000, 1e-5)
package globaloptimize
