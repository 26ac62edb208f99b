package geom

import "errors"

// ErrDimensionMismatch signals primitives of different dimension counts
// used in one operation.
var ErrDimensionMismatch = errors.New("geom: dimension mismatch")
