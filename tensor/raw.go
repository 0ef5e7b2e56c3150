// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/bhtsne/internal/tensor"
)

// DType is a constraint for buffer element types.
// Supported types: float32, float64, int32, int64.
type DType = tensor.DType

// DataType represents the runtime element type of a buffer.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the dimensions of a buffer.
// Example: Shape{1000, 2} holds a 1000-point 2-D embedding.
type Shape = tensor.Shape

// RawTensor is a contiguous typed buffer with shape metadata.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Zero-copy typed access via AsFloat32(), AsInt32(), etc.
//   - Element reads via At() and AtFlat()
//   - A sum-all reduction via Sum()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled buffer with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a buffer holding a copy of values.
func FromSlice[T DType](values []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(values, shape)
}

// View returns the buffer as []T. Panics if T does not match its dtype.
func View[T DType](r *RawTensor) []T {
	return tensor.View[T](r)
}
