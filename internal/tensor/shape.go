package tensor

import "fmt"

// Shape represents the dimensions of a buffer.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is usable. Zero-sized dimensions are
// allowed so that empty graphs (N == 0) can be represented.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex converts a multi-index into a row-major flat offset.
func (s Shape) FlatIndex(idx ...int) (int, error) {
	if len(idx) != len(s) {
		return 0, fmt.Errorf("index rank %d does not match shape rank %d", len(idx), len(s))
	}
	strides := s.ComputeStrides()
	flat := 0
	for i, v := range idx {
		if v < 0 || v >= s[i] {
			return 0, fmt.Errorf("index %d out of range for dimension %d of size %d", v, i, s[i])
		}
		flat += v * strides[i]
	}
	return flat, nil
}
