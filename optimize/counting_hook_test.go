package optimize_test

import (
	"github.com/briandleahy/globaloptimize/geometry"
)

// countingHook records every objective evaluation and branch step the
// search performs, for asserting exact evaluation counts in budget tests.
type countingHook struct {
	evaluations []geometry.FunctionPoint
	branches    int
}

func (h *countingHook) OnEvaluate(fp geometry.FunctionPoint) {
	h.evaluations = append(h.evaluations, fp)
}

func (h *countingHook) OnBranch(parent geometry.Simplex, children []geometry.Simplex) {
	h.branches++
}
