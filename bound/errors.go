package bound

import "errors"

// ErrNegativeLipschitzConstant is returned by NewOrdinaryPointBound when
// given a negative Lf or Lg. Negative Lipschitz constants are a programmer
// error: they cannot arise from a correctly computed bound.
var ErrNegativeLipschitzConstant = errors.New("bound: lipschitz constant must be non-negative")
