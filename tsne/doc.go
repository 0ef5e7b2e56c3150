// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tsne provides the Barnes-Hut t-SNE support kernels.
//
// # Overview
//
// The package covers the pieces of a Barnes-Hut t-SNE iteration that work on
// the sparse neighbor graph and the per-coordinate optimizer state:
//   - CountDegrees and Symmetrize turn an asymmetric k-NN graph into an
//     undirected compressed row graph, averaging reciprocal weights
//   - EdgeForces accumulates the attractive forces along graph edges
//   - UpdateGain/UpdateGains adapt per-coordinate step sizes
//   - Cell.Contains tests points against space-partitioning tree cells
//
// Allocation and zeroing of all buffers belong to the caller. The outer
// optimization loop and the repulsive tree traversal are not part of this
// package.
//
// # Basic Usage
//
//	knn := tsne.Graph[int32, float64]{RowPointer: rows, ColumnIndex: cols, Value: p}
//	sym, err := tsne.SymmetrizeGraph(knn)
//	if err != nil {
//	    return err
//	}
//
//	cfg := tsne.DefaultParallelConfig()
//	clear(attractive)
//	err = tsne.EdgeForces(sym.RowPointer, sym.ColumnIndex, sym.Value,
//	    sym.N(), 2, y, attractive, cfg)
//
// # Buffers with runtime types
//
// Kernels accepts tensor.RawTensor buffers and picks the instantiation from
// their DataType. Index buffers are Int32 or Int64, weights any numeric type,
// embeddings and gains Float32 or Float64.
//
// # Errors
//
// Inconsistent buffer sizes, counts that do not match the graph, and
// out-of-range column indices return ErrPrecondition before output is
// trusted. Mismatched dense operands return ErrShapeMismatch. An empty
// graph is a successful no-op.
package tsne
