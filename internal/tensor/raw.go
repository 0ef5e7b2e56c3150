package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is a contiguous typed buffer with shape metadata.
// Data lives in a byte slice and is viewed through typed slices.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw creates a new zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice creates a RawTensor holding a copy of values with the given shape.
func FromSlice[T DType](values []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(values) {
		return nil, fmt.Errorf("shape %v needs %d elements, got %d", shape, shape.NumElements(), len(values))
	}
	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(View[T](raw), values)
	return raw, nil
}

// Shape returns the buffer's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the buffer's row-major strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the buffer's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// Rows returns the leading dimension of a 2-D buffer.
// Panics if the buffer is not 2-D.
func (r *RawTensor) Rows() int {
	if len(r.shape) != 2 {
		panic(fmt.Sprintf("rows: tensor has rank %d, not 2", len(r.shape)))
	}
	return r.shape[0]
}

// Cols returns the trailing dimension of a 2-D buffer.
// Panics if the buffer is not 2-D.
func (r *RawTensor) Cols() int {
	if len(r.shape) != 2 {
		panic(fmt.Sprintf("cols: tensor has rank %d, not 2", len(r.shape)))
	}
	return r.shape[1]
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	return view[float32](r)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	return view[float64](r)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	return view[int32](r)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	return view[int64](r)
}

// View returns the buffer as []T. Panics if T does not match the dtype.
func View[T DType](r *RawTensor) []T {
	if dt := DataTypeOf[T](); dt != r.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
	return view[T](r)
}

func view[T DType](r *RawTensor) []T {
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the shape.
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// At returns the element at the given multi-index converted to float64.
func (r *RawTensor) At(idx ...int) (float64, error) {
	flat, err := r.shape.FlatIndex(idx...)
	if err != nil {
		return 0, err
	}
	return r.AtFlat(flat), nil
}

// AtFlat returns the element at a flat offset converted to float64.
func (r *RawTensor) AtFlat(i int) float64 {
	switch r.dtype {
	case Float32:
		return float64(r.AsFloat32()[i])
	case Float64:
		return r.AsFloat64()[i]
	case Int32:
		return float64(r.AsInt32()[i])
	case Int64:
		return float64(r.AsInt64()[i])
	default:
		panic(fmt.Sprintf("at: unsupported dtype %s", r.dtype))
	}
}

// Sum reduces all elements into a single float64.
func (r *RawTensor) Sum() float64 {
	switch r.dtype {
	case Float32:
		return float64(sum(r.AsFloat32()))
	case Float64:
		return sum(r.AsFloat64())
	case Int32:
		var total int64
		for _, v := range r.AsInt32() {
			total += int64(v)
		}
		return float64(total)
	case Int64:
		return float64(sum(r.AsInt64()))
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", r.dtype))
	}
}

// Zero sets every element to zero.
func (r *RawTensor) Zero() {
	clear(r.data)
}

func sum[T DType](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
