package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Float64)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 2}, raw.Shape())
	assert.Equal(t, []int{2, 1}, raw.Strides())
	assert.Equal(t, Float64, raw.DType())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 48, raw.ByteSize())
	assert.Equal(t, 3, raw.Rows())
	assert.Equal(t, 2, raw.Cols())
	assert.Equal(t, make([]float64, 6), raw.AsFloat64())
}

func TestNewRaw_InvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{3, -1}, Float32)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shape")
}

func TestNewRaw_Empty(t *testing.T) {
	raw, err := NewRaw(Shape{0, 2}, Float32)
	require.NoError(t, err)
	assert.Equal(t, 0, raw.NumElements())
	assert.Empty(t, raw.AsFloat32())
	assert.Zero(t, raw.Sum())
}

func TestRawTensorZeroCopyViews(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		raw, _ := NewRaw(Shape{4}, Int32)
		raw.AsInt32()[0] = 42
		assert.Equal(t, int32(42), raw.AsInt32()[0])
	})

	t.Run("int64", func(t *testing.T) {
		raw, _ := NewRaw(Shape{3, 2}, Int64)
		data := raw.AsInt64()
		require.Len(t, data, 6)
		data[5] = 7
		assert.Equal(t, int64(7), View[int64](raw)[5])
	})

	t.Run("float32", func(t *testing.T) {
		raw, _ := NewRaw(Shape{2, 2}, Float32)
		raw.AsFloat32()[3] = 1.5
		assert.InDelta(t, 1.5, raw.AtFlat(3), 1e-7)
	})
}

func TestRawTensorViewPanicsOnWrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32)

	assert.Panics(t, func() { raw.AsFloat64() })
	assert.Panics(t, func() { raw.AsInt32() })
	assert.Panics(t, func() { View[int64](raw) })
}

func TestFromSlice(t *testing.T) {
	values := []float32{1, 2, 3, 4, 5, 6}
	raw, err := FromSlice(values, Shape{2, 3})
	require.NoError(t, err)

	values[0] = 100
	assert.Equal(t, float32(1), raw.AsFloat32()[0], "FromSlice must copy")

	v, err := raw.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = raw.At(2, 0)
	assert.Error(t, err)

	_, err = FromSlice([]int32{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
}

func TestRawTensorSum(t *testing.T) {
	tests := []struct {
		name string
		raw  func() *RawTensor
		want float64
	}{
		{"int32", func() *RawTensor { r, _ := FromSlice([]int32{1, 2, 1}, Shape{3}); return r }, 4},
		{"int64", func() *RawTensor { r, _ := FromSlice([]int64{10, -3}, Shape{2}); return r }, 7},
		{"float32", func() *RawTensor { r, _ := FromSlice([]float32{0.5, 0.25}, Shape{2}); return r }, 0.75},
		{"float64", func() *RawTensor { r, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}); return r }, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.raw().Sum(), 1e-9)
		})
	}
}

func TestRawTensorZero(t *testing.T) {
	raw, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	raw.Zero()
	assert.Equal(t, []float64{0, 0, 0}, raw.AsFloat64())
}

func TestRawTensorRowsColsPanicOnRank(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float32)
	assert.Panics(t, func() { raw.Rows() })
	assert.Panics(t, func() { raw.Cols() })
}
