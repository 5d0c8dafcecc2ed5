package cpu

import (
	"fmt"
	"math"

	"github.com/seminar06/kadai/internal/tensor"
)

// Sum computes the total sum of all elements in the tensor (scalar result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	var sum float64
	for _, v := range x.Data() {
		sum += v
	}
	result.Data()[0] = sum

	return result
}

// max returns the largest element, or -Inf for an empty tensor.
func (cpu *CPUBackend) max(x *tensor.RawTensor) float64 {
	maxVal := math.Inf(-1)
	for _, v := range x.Data() {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}
