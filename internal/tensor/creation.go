package tensor

import (
	"fmt"
	"math"
)

// arangeTolerance absorbs rounding in (stop-start)/step so that a span which is an
// exact multiple of step does not gain a trailing element.
const arangeTolerance = 1e-9

// MaxArangeElements bounds the length of a grid built by Arange.
const MaxArangeElements = 1 << 20

// Arange creates a 1-D tensor of evenly spaced values in the half-open
// interval [start, stop). Element i is start + i*step.
//
// Example:
//
//	x, _ := tensor.Arange(-5.0, 5.0, 0.1, tensor.CPU) // 100 values: -5.0, -4.9, ..., 4.9
func Arange(start, stop, step float64, device Device) (*RawTensor, error) {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("arange: step %v: %w", step, ErrInvalidStep)
	}

	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("arange: bounds [%v, %v): %w", start, stop, ErrNonFinite)
	}

	span := (stop - start) / step
	if math.IsNaN(span) || math.IsInf(span, 0) {
		return nil, fmt.Errorf("arange: [%v, %v) with step %v: %w", start, stop, step, ErrTooLarge)
	}
	if span < 0 {
		return nil, fmt.Errorf("arange: [%v, %v) with step %v: %w", start, stop, step, ErrInvalidStep)
	}

	count := math.Ceil(span - arangeTolerance)
	if count > MaxArangeElements {
		return nil, fmt.Errorf("arange: %v elements exceeds limit %d: %w", count, MaxArangeElements, ErrTooLarge)
	}
	n := max(int(count), 0)

	r, err := NewRaw(Shape{n}, device)
	if err != nil {
		return nil, err
	}
	for i := range r.data {
		r.data[i] = start + float64(i)*step
	}
	return r, nil
}
