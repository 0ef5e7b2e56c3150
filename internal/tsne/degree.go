package tsne

import "fmt"

// CountDegrees adds into counts the number of entries each vertex's row will
// hold once the n-vertex graph (rowPointer, columnIndex) is symmetrized, and
// returns the total over counts[0:n].
//
// Every stored edge (n, j) gives n one slot. When j's row has no entry
// pointing back to n, j also gets one slot for the implicit reverse edge.
// counts is accumulated into, so callers pass a zeroed slice.
//
// The loop is sequential: two vertices may increment the same counter.
func CountDegrees[I Index](rowPointer, columnIndex []I, n int, counts []I) (int, error) {
	if err := validateCSR(rowPointer, columnIndex, n); err != nil {
		return 0, fmt.Errorf("count degrees: %w", err)
	}
	if len(counts) < n {
		return 0, fmt.Errorf("count degrees: counts length %d < N = %d: %w", len(counts), n, ErrPrecondition)
	}

	for v := 0; v < n; v++ {
		for i := rowPointer[v]; i < rowPointer[v+1]; i++ {
			j := columnIndex[i]
			counts[v]++
			if findReciprocal(rowPointer, columnIndex, j, I(v)) < 0 {
				counts[j]++
			}
		}
	}

	total := 0
	for _, c := range counts[:n] {
		total += int(c)
	}
	return total, nil
}
