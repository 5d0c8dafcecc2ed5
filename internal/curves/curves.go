// Package curves samples the sigmoid, softmax and tanh activations over a
// fixed grid and renders them into a single figure.
package curves

import (
	"fmt"

	"github.com/seminar06/kadai/internal/backend/cpu"
	"github.com/seminar06/kadai/internal/tensor"
)

// Curves holds the sample grid and the three activation series.
// All tensors are 1-D and share the grid's length.
type Curves struct {
	X       *tensor.RawTensor
	Sigmoid *tensor.RawTensor
	Softmax *tensor.RawTensor // normalized over the whole grid
	Tanh    *tensor.RawTensor
}

// Grid creates the sample points described by cfg.
func Grid(cfg Config) (*tensor.RawTensor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	x, err := tensor.Arange(cfg.Start, cfg.Stop, cfg.Step, tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("curves: grid: %w", err)
	}
	return x, nil
}

// Compute samples every activation over the grid described by cfg.
func Compute(backend *cpu.CPUBackend, cfg Config) (*Curves, error) {
	x, err := Grid(cfg)
	if err != nil {
		return nil, err
	}

	return &Curves{
		X:       x,
		Sigmoid: backend.Sigmoid(x),
		Softmax: backend.Softmax(x),
		Tanh:    backend.Tanh(x),
	}, nil
}

// Len returns the number of grid points.
func (c *Curves) Len() int {
	return c.X.NumElements()
}

// SoftmaxSum returns the total of the softmax series, 1 up to rounding.
func (c *Curves) SoftmaxSum(backend *cpu.CPUBackend) float64 {
	sum, _ := backend.Sum(c.Softmax).Item() // Sum always yields a scalar
	return sum
}
