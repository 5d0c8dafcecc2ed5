// Package tensor provides the float64 tensor storage used by the exercise kernels.
//
// A RawTensor owns a contiguous row-major buffer. Kernels in internal/backend/cpu
// always allocate a fresh result, so tensors are never mutated after creation.
package tensor

import "errors"

// Common errors.
var (
	ErrShapeMismatch = errors.New("data length does not match shape")
	ErrInvalidStep   = errors.New("arange step must be non-zero and point from start towards stop")
	ErrNotScalar     = errors.New("tensor is not a single element")
	ErrNonFinite     = errors.New("arange bounds must be finite")
	ErrTooLarge      = errors.New("arange would exceed the element limit")
)
