package optimize

import "errors"

// ErrNoInitialSimplices is returned by New when given an empty initial
// simplex list: the optimizer has nothing to bound or search.
var ErrNoInitialSimplices = errors.New("optimize: initial simplices must be non-empty")
