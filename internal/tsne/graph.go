// Package tsne implements the Barnes-Hut t-SNE support kernels: degree
// counting and symmetrization of a sparse neighbor graph, attractive edge
// forces, and adaptive gain updates.
package tsne

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Index is the element type of row pointers, column indices and degree counts.
type Index interface {
	~int | ~int32 | ~int64
}

// Numeric is the element type accepted for edge weights.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Float is the element type accepted by the gradient kernels.
type Float interface {
	constraints.Float
}

// Graph is a sparse adjacency in compressed row form.
// The neighbors of vertex n are ColumnIndex[RowPointer[n]:RowPointer[n+1]]
// with weights Value[RowPointer[n]:RowPointer[n+1]].
type Graph[I Index, T Numeric] struct {
	RowPointer  []I
	ColumnIndex []I
	Value       []T
}

// N returns the number of vertices.
func (g Graph[I, T]) N() int {
	if len(g.RowPointer) == 0 {
		return 0
	}
	return len(g.RowPointer) - 1
}

// NNZ returns the number of stored edges.
func (g Graph[I, T]) NNZ() int {
	if len(g.RowPointer) == 0 {
		return 0
	}
	return int(g.RowPointer[len(g.RowPointer)-1])
}

// Neighbors returns the column indices and weights of vertex n's row.
func (g Graph[I, T]) Neighbors(n int) ([]I, []T) {
	begin, end := g.RowPointer[n], g.RowPointer[n+1]
	return g.ColumnIndex[begin:end], g.Value[begin:end]
}

// Lookup returns the weight of edge (n, j) and whether it is stored.
// The first matching entry in n's row is used.
func (g Graph[I, T]) Lookup(n, j int) (T, bool) {
	cols, vals := g.Neighbors(n)
	for i, c := range cols {
		if int(c) == j {
			return vals[i], true
		}
	}
	var zero T
	return zero, false
}

// Validate checks the compressed row invariants, including weights.
func (g Graph[I, T]) Validate() error {
	n := g.N()
	if err := validateCSR(g.RowPointer, g.ColumnIndex, n); err != nil {
		return err
	}
	if len(g.Value) < g.NNZ() {
		return fmt.Errorf("value length %d < %d edges: %w", len(g.Value), g.NNZ(), ErrPrecondition)
	}
	return nil
}

// IsSymmetric reports whether every stored edge (n, j) with weight w has a
// stored reverse edge (j, n) whose weight is within tol of w.
func (g Graph[I, T]) IsSymmetric(tol float64) bool {
	for n := 0; n < g.N(); n++ {
		cols, vals := g.Neighbors(n)
		for i, c := range cols {
			w, ok := g.Lookup(int(c), n)
			if !ok {
				return false
			}
			diff := float64(w) - float64(vals[i])
			if diff > tol || diff < -tol {
				return false
			}
		}
	}
	return true
}

// validateCSR checks that rowPointer/columnIndex describe a well-formed
// n-vertex graph whose columns all lie in [0, n).
func validateCSR[I Index](rowPointer, columnIndex []I, n int) error {
	if n < 0 {
		return fmt.Errorf("negative vertex count %d: %w", n, ErrPrecondition)
	}
	if n == 0 {
		return nil
	}
	if len(rowPointer) < n+1 {
		return fmt.Errorf("row pointer length %d < N+1 = %d: %w", len(rowPointer), n+1, ErrPrecondition)
	}
	if rowPointer[0] != 0 {
		return fmt.Errorf("row pointer starts at %d, not 0: %w", rowPointer[0], ErrPrecondition)
	}
	for v := 0; v < n; v++ {
		if rowPointer[v+1] < rowPointer[v] {
			return fmt.Errorf("row pointer decreases at vertex %d: %w", v, ErrPrecondition)
		}
	}
	nnz := int(rowPointer[n])
	if len(columnIndex) < nnz {
		return fmt.Errorf("column index length %d < %d edges: %w", len(columnIndex), nnz, ErrPrecondition)
	}
	for i, c := range columnIndex[:nnz] {
		if c < 0 || int(c) >= n {
			return fmt.Errorf("column %d at entry %d outside [0, %d): %w", c, i, n, ErrPrecondition)
		}
	}
	return nil
}

// findReciprocal returns the position of the first entry in j's row that
// points back to n, or -1.
func findReciprocal[I Index](rowPointer, columnIndex []I, j, n I) int {
	for m := rowPointer[j]; m < rowPointer[j+1]; m++ {
		if columnIndex[m] == n {
			return int(m)
		}
	}
	return -1
}
