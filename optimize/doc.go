// Package optimize implements the branch-and-bound search that ties
// together the queue, geometry, and bound packages into a deterministic
// global minimizer.
//
// An Optimizer owns a priority queue of (simplex, lower-bound) pairs and an
// incumbent, the best FunctionPoint observed so far. Optimize repeatedly
// pops the simplex with the smallest lower bound, checks whether that
// bound already certifies the incumbent within tolerance, and otherwise
// bisects the simplex along its longest edge from the max-value vertex,
// evaluating the objective once at the new midpoint and inserting the two
// resulting children back into the queue.
//
// Determinism: the sequence of objective evaluations depends only on the
// queue's ordering and the tie-breaking rules in the geometry and queue
// packages, so identical inputs always produce identical evaluation
// sequences. The optimizer performs no I/O and spawns no goroutines; the
// only potentially slow call is the user-supplied objective, assumed
// synchronous and free of side effects on the optimizer's own state.
//
// Resumability: Optimize takes an evaluation budget per call, not a total
// one. Hitting the budget is not an error: the incumbent and queue are left
// intact, and a subsequent Optimize call on the same Optimizer picks up
// where the last one left off. A canceled context.Context, checked once per
// branch step before the next candidate is popped, stops the search the
// same way: no candidate is lost, and a later call with a live context
// resumes exactly where the canceled one stopped.
//
// An optional Hook receives a callback after every objective evaluation and
// every branch step, for tests and callers that want visibility
// into the search without threading a logger through the core loop.
package optimize
