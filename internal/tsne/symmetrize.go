package tsne

import "fmt"

// Symmetrize builds the undirected form of the n-vertex graph
// (rowPointer, columnIndex, value) into the caller-allocated output buffers.
// counts must hold the per-vertex totals produced by CountDegrees.
//
// For each stored edge (v, j):
//   - if j's row points back to v and v <= j, the pair is written once into
//     both rows with weight value(v,j) + value(j,v);
//   - if j's row does not point back to v, the pair is written into both rows
//     with weight value(v,j);
//   - otherwise the pair was already written from the smaller endpoint.
//
// A self-loop occupies a single slot in its row. All written weights are
// halved at the end, so reciprocal pairs carry their mean and one-sided edges
// carry half their weight.
//
// Output capacity is checked before anything is written and every write is
// checked against its row bounds. Inputs with duplicate edges make the counts
// disagree with the fill and are rejected with ErrPrecondition; the output
// contents are unspecified after an error.
func Symmetrize[I Index, T Numeric](
	rowPointer, columnIndex []I, value []T, n int, counts []I,
	outRowPointer, outColumnIndex []I, outValue []T,
) error {
	if err := validateCSR(rowPointer, columnIndex, n); err != nil {
		return fmt.Errorf("symmetrize: %w", err)
	}
	if n == 0 {
		if len(outRowPointer) > 0 {
			outRowPointer[0] = 0
		}
		return nil
	}
	if len(value) < int(rowPointer[n]) {
		return fmt.Errorf("symmetrize: value length %d < %d edges: %w", len(value), rowPointer[n], ErrPrecondition)
	}
	if len(counts) < n {
		return fmt.Errorf("symmetrize: counts length %d < N = %d: %w", len(counts), n, ErrPrecondition)
	}
	if len(outRowPointer) < n+1 {
		return fmt.Errorf("symmetrize: output row pointer length %d < N+1 = %d: %w", len(outRowPointer), n+1, ErrPrecondition)
	}

	total := 0
	for v, c := range counts[:n] {
		if c < 0 {
			return fmt.Errorf("symmetrize: negative count %d for vertex %d: %w", c, v, ErrPrecondition)
		}
		total += int(c)
	}
	if len(outColumnIndex) < total || len(outValue) < total {
		return fmt.Errorf("symmetrize: output capacity (%d columns, %d values) < %d entries: %w",
			len(outColumnIndex), len(outValue), total, ErrPrecondition)
	}

	// Row starts are a prefix sum and must be computed in order.
	outRowPointer[0] = 0
	for v := 0; v < n; v++ {
		outRowPointer[v+1] = outRowPointer[v] + counts[v]
	}

	offset := make([]I, n)
	place := func(v, col I, w T) error {
		slot := outRowPointer[v] + offset[v]
		if slot >= outRowPointer[v+1] {
			return fmt.Errorf("symmetrize: row %d overflows its %d slots: %w", v, counts[v], ErrPrecondition)
		}
		outColumnIndex[slot] = col
		outValue[slot] = w
		return nil
	}

	for v := I(0); int(v) < n; v++ {
		for i := rowPointer[v]; i < rowPointer[v+1]; i++ {
			j := columnIndex[i]

			var w T
			if m := findReciprocal(rowPointer, columnIndex, j, v); m < 0 {
				w = value[i]
			} else if v <= j {
				w = value[i] + value[m]
			} else {
				continue
			}

			if err := place(v, j, w); err != nil {
				return err
			}
			if err := place(j, v, w); err != nil {
				return err
			}

			offset[v]++
			if j != v {
				offset[j]++
			}
		}
	}

	for v := 0; v < n; v++ {
		if offset[v] != counts[v] {
			return fmt.Errorf("symmetrize: row %d filled %d of %d slots: %w", v, offset[v], counts[v], ErrPrecondition)
		}
	}

	for k := range outValue[:total] {
		outValue[k] /= 2
	}
	return nil
}

// SymmetrizeGraph counts degrees, allocates the output and symmetrizes g.
func SymmetrizeGraph[I Index, T Numeric](g Graph[I, T]) (Graph[I, T], error) {
	if err := g.Validate(); err != nil {
		return Graph[I, T]{}, fmt.Errorf("symmetrize graph: %w", err)
	}

	n := g.N()
	counts := make([]I, n)
	total, err := CountDegrees(g.RowPointer, g.ColumnIndex, n, counts)
	if err != nil {
		return Graph[I, T]{}, err
	}

	out := Graph[I, T]{
		RowPointer:  make([]I, n+1),
		ColumnIndex: make([]I, total),
		Value:       make([]T, total),
	}
	if err := Symmetrize(g.RowPointer, g.ColumnIndex, g.Value, n, counts,
		out.RowPointer, out.ColumnIndex, out.Value); err != nil {
		return Graph[I, T]{}, err
	}
	if out.NNZ() != total {
		return Graph[I, T]{}, fmt.Errorf("symmetrize graph: %d entries written, %d counted: %w", out.NNZ(), total, ErrPrecondition)
	}
	return out, nil
}
