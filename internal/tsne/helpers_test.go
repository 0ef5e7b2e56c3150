package tsne

import (
	"math/rand"
	"sort"
)

// randomKNN returns an asymmetric k-nearest-neighbor style graph: every
// vertex has k distinct neighbors other than itself, weights in (0, 1].
func randomKNN(n, k int, seed int64) Graph[int32, float64] {
	rng := rand.New(rand.NewSource(seed))
	g := Graph[int32, float64]{RowPointer: make([]int32, n+1)}

	for v := 0; v < n; v++ {
		picked := make(map[int]bool, k)
		for len(picked) < k {
			c := rng.Intn(n)
			if c != v {
				picked[c] = true
			}
		}
		cols := make([]int, 0, k)
		for c := range picked {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		for _, c := range cols {
			g.ColumnIndex = append(g.ColumnIndex, int32(c))
			g.Value = append(g.Value, 1-rng.Float64())
		}
		g.RowPointer[v+1] = int32(len(g.ColumnIndex))
	}
	return g
}

// scenarioGraph is 0→1 (1.0), 1→0 (2.0), 1→2 (1.0).
func scenarioGraph() Graph[int32, float64] {
	return Graph[int32, float64]{
		RowPointer:  []int32{0, 1, 3, 3},
		ColumnIndex: []int32{1, 0, 2},
		Value:       []float64{1, 2, 1},
	}
}

func randomMatrix(n, d int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	m := make([]float64, n*d)
	for i := range m {
		m[i] = rng.NormFloat64()
	}
	return m
}
