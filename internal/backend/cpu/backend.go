// Package cpu implements the CPU backend for the exercise kernels.
package cpu

import (
	"fmt"

	"github.com/seminar06/kadai/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// unary allocates a result shaped like x and fills it with fn applied elementwise.
func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, fn func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	src := x.Data()
	dst := result.Data()
	for i, v := range src {
		dst[i] = fn(v)
	}
	return result
}
