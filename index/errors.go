package index

import "errors"

// ErrVectorLengthMismatch is returned when comparing vectors of different dimensions.
var ErrVectorLengthMismatch = errors.New("vector length mismatch")
