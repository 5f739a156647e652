package mdbackbone

import "errors"

// ErrInvalidDepth is returned by StructuralBackboneNaive when a negative
// hop cap is supplied.
var ErrInvalidDepth = errors.New("mdbackbone: max depth must be non-negative")
