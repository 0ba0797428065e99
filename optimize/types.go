package optimize

import "github.com/briandleahy/globaloptimize/geometry"

// Objective is the user-supplied function being minimized. It must be
// pure, deterministic, and total on the search domain; non-finite returns
// are a user error the optimizer does not validate.
type Objective func(geometry.Point) float64

// Hook observes the search as it runs, without participating in its
// control flow. All methods have a no-op default (see noopHook) so callers
// that don't need observability never have to implement this interface.
type Hook interface {
	// OnEvaluate is called once per objective evaluation, after the
	// incumbent has been updated with its result.
	OnEvaluate(fp geometry.FunctionPoint)
	// OnBranch is called once per branch step, after the children have
	// been bounded and inserted into the queue: two children normally, or
	// the parent alone when a degenerate simplex is re-inserted unchanged.
	OnBranch(parent geometry.Simplex, children []geometry.Simplex)
}

type noopHook struct{}

func (noopHook) OnEvaluate(geometry.FunctionPoint)             {}
func (noopHook) OnBranch(geometry.Simplex, []geometry.Simplex) {}
