// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/bhtsne/tensor"
)

// TestRawTensorAPI verifies the RawTensor alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, 6, raw.NumElements())

	data := raw.AsFloat32()
	data[4] = 2.5
	v, err := raw.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestFromSliceAndView(t *testing.T) {
	raw, err := tensor.FromSlice([]int64{3, 1, 4}, tensor.Shape{3})
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 1, 4}, tensor.View[int64](raw))
	assert.Equal(t, 8.0, raw.Sum())
	assert.Panics(t, func() { tensor.View[int32](raw) })
}
