package tsne

import (
	"fmt"

	"github.com/born-ml/bhtsne/internal/parallel"
)

// EdgeForces adds the attractive t-SNE force along every edge of the
// n-vertex graph into forces. embedding and forces are row-major n×d.
//
// For vertex v and neighbor c with weight p:
//
//	q = p / (1 + ||y_v - y_c||²)
//	forces[v] += q * (y_v - y_c)
//
// Vertices are split into contiguous ranges across workers. Each vertex
// writes only its own force row, so no synchronization is needed and the
// result does not depend on cfg.
func EdgeForces[I Index, T Float](
	rowPointer, columnIndex []I, value []T, n, d int,
	embedding, forces []T, cfg parallel.Config,
) error {
	if err := validateCSR(rowPointer, columnIndex, n); err != nil {
		return fmt.Errorf("edge forces: %w", err)
	}
	if n == 0 {
		return nil
	}
	if len(value) < int(rowPointer[n]) {
		return fmt.Errorf("edge forces: value length %d < %d edges: %w", len(value), rowPointer[n], ErrPrecondition)
	}
	if d <= 0 {
		return fmt.Errorf("edge forces: dimension %d must be positive: %w", d, ErrShapeMismatch)
	}
	if len(embedding) != len(forces) {
		return fmt.Errorf("edge forces: embedding has %d elements, forces %d: %w", len(embedding), len(forces), ErrShapeMismatch)
	}
	if len(embedding) < n*d {
		return fmt.Errorf("edge forces: %d elements cannot hold %d×%d: %w", len(embedding), n, d, ErrShapeMismatch)
	}

	parallel.ForRange(0, n, func(start, stop int) {
		for v := start; v < stop; v++ {
			row := embedding[v*d : (v+1)*d]
			out := forces[v*d : (v+1)*d]
			for i := rowPointer[v]; i < rowPointer[v+1]; i++ {
				c := int(columnIndex[i])
				other := embedding[c*d : (c+1)*d]

				q := T(1)
				for k := range row {
					diff := row[k] - other[k]
					q += diff * diff
				}
				q = value[i] / q

				for k := range row {
					out[k] += (row[k] - other[k]) * q
				}
			}
		}
	}, cfg)
	return nil
}
