package tsne

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphAccessors(t *testing.T) {
	g := scenarioGraph()

	assert.Equal(t, 3, g.N())
	assert.Equal(t, 3, g.NNZ())

	cols, vals := g.Neighbors(1)
	assert.Equal(t, []int32{0, 2}, cols)
	assert.Equal(t, []float64{2, 1}, vals)

	w, ok := g.Lookup(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 1.0, w)

	_, ok = g.Lookup(2, 1)
	assert.False(t, ok)

	assert.False(t, g.IsSymmetric(0))
	assert.Equal(t, 0, Graph[int32, float64]{}.N())
	assert.Equal(t, 0, Graph[int32, float64]{}.NNZ())
}

func TestGraphValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Graph[int32, float64]
		ok   bool
	}{
		{"valid", scenarioGraph(), true},
		{"empty", Graph[int32, float64]{RowPointer: []int32{0}}, true},
		{"nonzero start", Graph[int32, float64]{RowPointer: []int32{1, 1}}, false},
		{"decreasing", Graph[int32, float64]{
			RowPointer: []int32{0, 2, 1}, ColumnIndex: []int32{1, 0}, Value: []float64{1, 1},
		}, false},
		{"column out of range", Graph[int32, float64]{
			RowPointer: []int32{0, 1, 1}, ColumnIndex: []int32{2}, Value: []float64{1},
		}, false},
		{"negative column", Graph[int32, float64]{
			RowPointer: []int32{0, 1, 1}, ColumnIndex: []int32{-1}, Value: []float64{1},
		}, false},
		{"short columns", Graph[int32, float64]{
			RowPointer: []int32{0, 2, 2}, ColumnIndex: []int32{1}, Value: []float64{1, 1},
		}, false},
		{"short values", Graph[int32, float64]{
			RowPointer: []int32{0, 1, 1}, ColumnIndex: []int32{1}, Value: nil,
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrPrecondition)
			}
		})
	}
}
