// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tsne

import (
	"github.com/born-ml/bhtsne/internal/parallel"
	"github.com/born-ml/bhtsne/internal/sptree"
	"github.com/born-ml/bhtsne/internal/tsne"
)

// Index is the element type of row pointers, column indices and counts.
type Index = tsne.Index

// Numeric is the element type accepted for edge weights.
type Numeric = tsne.Numeric

// Float is the element type accepted by the gradient kernels.
type Float = tsne.Float

// Graph is a sparse adjacency in compressed row form.
type Graph[I Index, T Numeric] = tsne.Graph[I, T]

// Cell is an axis-aligned box of the space-partitioning tree.
type Cell[T Float] = sptree.Cell[T]

// Kernels runs the kernels on RawTensor buffers with runtime dtype dispatch.
type Kernels = tsne.Kernels

// ParallelConfig controls how the parallel kernels split work.
type ParallelConfig = parallel.Config

// Errors returned by the kernels; match with errors.Is.
var (
	ErrPrecondition      = tsne.ErrPrecondition
	ErrShapeMismatch     = tsne.ErrShapeMismatch
	ErrUnsupportedDType  = tsne.ErrUnsupportedDType
	ErrDimensionMismatch = sptree.ErrDimensionMismatch
)

// MinGain is the lower bound applied by UpdateGain.
const MinGain = tsne.MinGain

// DefaultParallelConfig returns a config sized to the number of CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates RawTensor kernels.
//
// Example:
//
//	k := tsne.New(tsne.DefaultParallelConfig())
//	total, err := k.CountDegrees(rowP, colP, n, counts)
func New(cfg ParallelConfig) *Kernels {
	return tsne.New(cfg)
}

// CountDegrees adds per-vertex symmetric row sizes into counts and returns their total.
func CountDegrees[I Index](rowPointer, columnIndex []I, n int, counts []I) (int, error) {
	return tsne.CountDegrees(rowPointer, columnIndex, n, counts)
}

// Symmetrize writes the undirected form of the graph into the output buffers.
// counts must come from CountDegrees.
func Symmetrize[I Index, T Numeric](
	rowPointer, columnIndex []I, value []T, n int, counts []I,
	outRowPointer, outColumnIndex []I, outValue []T,
) error {
	return tsne.Symmetrize(rowPointer, columnIndex, value, n, counts, outRowPointer, outColumnIndex, outValue)
}

// SymmetrizeGraph counts, allocates and symmetrizes g in one call.
//
// Example:
//
//	knn := tsne.Graph[int32, float64]{RowPointer: rows, ColumnIndex: cols, Value: p}
//	sym, err := tsne.SymmetrizeGraph(knn)
func SymmetrizeGraph[I Index, T Numeric](g Graph[I, T]) (Graph[I, T], error) {
	return tsne.SymmetrizeGraph(g)
}

// EdgeForces adds attractive forces along every edge into forces (n×d, row-major).
func EdgeForces[I Index, T Float](
	rowPointer, columnIndex []I, value []T, n, d int,
	embedding, forces []T, cfg ParallelConfig,
) error {
	return tsne.EdgeForces(rowPointer, columnIndex, value, n, d, embedding, forces, cfg)
}

// UpdateGain returns the next gain for one coordinate.
func UpdateGain[T Float](gain, grad, prevStep T) T {
	return tsne.UpdateGain(gain, grad, prevStep)
}

// UpdateGains applies UpdateGain elementwise into out, which may alias gains.
func UpdateGains[T Float](gains, grads, steps, out []T, cfg ParallelConfig) error {
	return tsne.UpdateGains(gains, grads, steps, out, cfg)
}

// NewCell returns a cell with the given center and half-widths.
func NewCell[T Float](center, halfWidth []T) (Cell[T], error) {
	return sptree.NewCell(center, halfWidth)
}

// Contains reports whether the first d coordinates of point lie in the cell
// (center, halfWidth), bounds included.
func Contains[T Float](center, halfWidth, point []T, d int) bool {
	return sptree.Contains(center, halfWidth, point, d)
}
