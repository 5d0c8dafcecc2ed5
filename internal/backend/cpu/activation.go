package cpu

import (
	"math"

	"github.com/seminar06/kadai/internal/tensor"
)

// Sigmoid computes the logistic function elementwise: 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sigmoid", x, func(v float64) float64 {
		return 1 / (1 + math.Exp(-v))
	})
}

// Tanh computes the hyperbolic tangent elementwise:
// (exp(x) - exp(-x)) / (exp(x) + exp(-x)).
//
// The ratio is evaluated as (1 - e) / (1 + e) with e = exp(-2|x|) and the sign
// restored afterwards, which keeps large |x| finite and makes the result exactly odd.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("tanh", x, func(v float64) float64 {
		e := math.Exp(-2 * math.Abs(v))
		return math.Copysign((1-e)/(1+e), v)
	})
}

// Softmax normalizes the whole tensor as a single vector:
// Softmax(x_i) = exp(x_i) / sum(exp(x_j)) over every element j.
// The maximum is subtracted before exponentiating.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor) *tensor.RawTensor {
	if x.NumElements() == 0 {
		return cpu.unary("softmax", x, func(v float64) float64 { return v })
	}

	maxVal := cpu.max(x)
	result := cpu.unary("softmax", x, func(v float64) float64 {
		return math.Exp(v - maxVal)
	})

	var sum float64
	dst := result.Data()
	for _, v := range dst {
		sum += v
	}
	for i := range dst {
		dst[i] /= sum
	}
	return result
}
