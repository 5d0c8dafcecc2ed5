package tensor

import (
	"fmt"
	"slices"
)

// Shape lists tensor dimensions, outermost first. An empty Shape is a scalar.
type Shape []int

// NumElements returns the product of the dimensions; a scalar holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects negative dimensions. Zero is allowed and yields an empty tensor.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(dim int) bool { return dim < 0 }); i >= 0 {
		return fmt.Errorf("negative dimension %d at index %d", s[i], i)
	}
	return nil
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}
