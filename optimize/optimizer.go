package optimize

import (
	"context"

	"github.com/briandleahy/globaloptimize/bound"
	"github.com/briandleahy/globaloptimize/geometry"
	"github.com/briandleahy/globaloptimize/queue"
)

// DefaultMaxFunctionEvaluations is the evaluation budget Optimize uses when
// called with a non-positive maxFunctionEvaluations.
const DefaultMaxFunctionEvaluations = 1000

// DefaultFtol is the optimality-gap tolerance Optimize uses when called
// with a negative ftol.
const DefaultFtol = 1e-5

// Optimizer performs branch-and-bound minimization of an Objective over the
// union of a set of simplices, using a SimplexBoundRule to prune the
// search.
type Optimizer struct {
	objective    Objective
	simplexBound bound.SimplexBoundRule
	queue        *queue.Queue[geometry.Simplex]
	incumbent    geometry.FunctionPoint
	hook         Hook
}

// New constructs an Optimizer. initialSimplices must be non-empty; every
// initial simplex is bounded and inserted into the queue, and the
// incumbent is set to the minimum-value vertex across all of them
// (ties broken by first occurrence).
func New(
	objective Objective,
	initialSimplices []geometry.Simplex,
	simplexBound bound.SimplexBoundRule,
	opts ...Option,
) (*Optimizer, error) {
	if len(initialSimplices) == 0 {
		return nil, ErrNoInitialSimplices
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	q := queue.New[geometry.Simplex]()
	var incumbent geometry.FunctionPoint
	haveIncumbent := false

	for _, s := range initialSimplices {
		b := simplexBound.Bound(s)
		q.Insert(queue.NewPair(s, b))

		for _, v := range s.Vertices() {
			if !haveIncumbent || v.Value < incumbent.Value {
				incumbent = v
				haveIncumbent = true
			}
		}
	}

	return &Optimizer{
		objective:    objective,
		simplexBound: simplexBound,
		queue:        q,
		incumbent:    incumbent,
		hook:         cfg.hook,
	}, nil
}

// CurrentMinFunctionPoint returns the incumbent, the best FunctionPoint
// observed so far. It is safe to call at any time, including between
// Optimize calls.
func (o *Optimizer) CurrentMinFunctionPoint() geometry.FunctionPoint {
	return o.incumbent
}

// Optimize runs up to maxFunctionEvaluations branch steps, each performing
// at most one objective evaluation, and returns the incumbent on exit.
//
// maxFunctionEvaluations <= 0 uses DefaultMaxFunctionEvaluations; ftol < 0
// uses DefaultFtol.
//
// Optimize stops early, before exhausting the budget, as soon as the
// popped candidate's bound no longer beats the incumbent by more than
// ftol: formally, when candidate.Value > incumbent.Value - ftol. That
// candidate is re-inserted into the queue before returning, so a later
// Optimize call on the same Optimizer resumes from exactly this state.
// Optimize also returns early if the queue empties entirely.
//
// ctx is checked once per branch step, before popping the next candidate,
// matching the teacher's bfs/dfs convention of checking for cancellation
// before dequeuing; cancellation is not threaded into the Lipschitz math
// itself. A canceled ctx aborts the loop exactly like budget exhaustion:
// the popped candidate has not been removed yet, so no work is lost, and
// the incumbent and queue are left in a resumable state for a later call.
func (o *Optimizer) Optimize(ctx context.Context, maxFunctionEvaluations int, ftol float64) geometry.FunctionPoint {
	if maxFunctionEvaluations <= 0 {
		maxFunctionEvaluations = DefaultMaxFunctionEvaluations
	}
	if ftol < 0 {
		ftol = DefaultFtol
	}

	for i := 0; i < maxFunctionEvaluations; i++ {
		select {
		case <-ctx.Done():
			return o.incumbent
		default:
		}

		candidate, err := o.queue.PopMin()
		if err != nil {
			return o.incumbent
		}

		if candidate.Value > o.incumbent.Value-ftol {
			o.queue.Insert(candidate)
			return o.incumbent
		}

		o.branch(candidate.Object)
	}

	return o.incumbent
}

// branch bisects s along its longest edge incident to its max-value
// vertex, evaluating the objective once at the new midpoint, and inserts
// the (at most two) resulting children back into the queue.
func (o *Optimizer) branch(s geometry.Simplex) {
	vertices := s.Vertices()

	maxIdx := 0
	for i, v := range vertices {
		if v.Value > vertices[maxIdx].Value {
			maxIdx = i
		}
	}
	vMax := vertices[maxIdx]

	farIdx := 0
	farDist := -1.0
	for i, v := range vertices {
		d := vMax.Point.Distance(v.Point)
		if d > farDist {
			farDist = d
			farIdx = i
		}
	}
	vFar := vertices[farIdx]

	if farIdx == maxIdx {
		// Degenerate: every vertex coincides with vMax, so bisection has
		// no nonzero-length edge to split. Re-bound and re-insert the
		// simplex unchanged rather than evaluating the objective again at
		// a point already known.
		children := []geometry.Simplex{s}
		o.queue.Insert(queue.NewPair(s, o.simplexBound.Bound(s)))
		o.hook.OnBranch(s, children)

		return
	}

	others := make([]geometry.FunctionPoint, 0, len(vertices)-2)
	for i, v := range vertices {
		if i != maxIdx && i != farIdx {
			others = append(others, v)
		}
	}

	mid := vMax.Point.Midpoint(vFar.Point)
	vMid := o.evaluate(mid)

	firstVertices := append(append([]geometry.FunctionPoint{}, others...), vMid, vMax)
	secondVertices := append(append([]geometry.FunctionPoint{}, others...), vMid, vFar)

	first, err := geometry.NewSimplex(firstVertices)
	if err != nil {
		panic("optimize: branching produced an invalid simplex: " + err.Error())
	}
	second, err := geometry.NewSimplex(secondVertices)
	if err != nil {
		panic("optimize: branching produced an invalid simplex: " + err.Error())
	}

	o.queue.Insert(queue.NewPair(first, o.simplexBound.Bound(first)))
	o.queue.Insert(queue.NewPair(second, o.simplexBound.Bound(second)))
	o.hook.OnBranch(s, []geometry.Simplex{first, second})
}

// evaluate is the sole place the incumbent changes after construction: it
// calls the objective, builds the resulting FunctionPoint, and atomically
// updates the incumbent if the new value improves on it.
func (o *Optimizer) evaluate(p geometry.Point) geometry.FunctionPoint {
	fp := geometry.NewFunctionPoint(p, o.objective(p))
	if fp.Value < o.incumbent.Value {
		o.incumbent = fp
	}
	o.hook.OnEvaluate(fp)

	return fp
}
