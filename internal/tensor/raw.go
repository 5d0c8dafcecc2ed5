package tensor

import "fmt"

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level tensor representation.
type RawTensor struct {
	data   []float64
	shape  Shape
	device Device
}

// NewRaw creates a new RawTensor with the given shape.
// Memory is zero-initialized.
func NewRaw(shape Shape, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		device: device,
	}, nil
}

// FromSlice creates a RawTensor holding a copy of data.
func FromSlice(data []float64, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d: %w",
			shape, shape.NumElements(), len(data), ErrShapeMismatch)
	}

	r, err := NewRaw(shape, device)
	if err != nil {
		return nil, err
	}
	copy(r.data, data)
	return r, nil
}

// Vector creates a 1-D RawTensor from data.
func Vector(data []float64, device Device) *RawTensor {
	r, _ := FromSlice(data, Shape{len(data)}, device) // length always matches
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the underlying buffer.
// WARNING: Direct access to underlying memory. Kernels write into freshly
// allocated results only; callers should treat the slice as read-only.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// Values returns a copy of the tensor's elements.
func (r *RawTensor) Values() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data)
	return out
}

// Item returns the single element of a one-element tensor.
func (r *RawTensor) Item() (float64, error) {
	if len(r.data) != 1 {
		return 0, fmt.Errorf("item: %d elements: %w", len(r.data), ErrNotScalar)
	}
	return r.data[0], nil
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:   r.Values(),
		shape:  r.shape.Clone(),
		device: r.device,
	}
}

// String returns a short description of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor(shape=%v, device=%s)", r.shape, r.device)
}
