package curve

import "errors"

// ErrLengthMismatch is returned when paired slices (e.g. a pairing-product
// operand pair) have differing lengths.
var ErrLengthMismatch = errors.New("curve: operand slices have different lengths")
