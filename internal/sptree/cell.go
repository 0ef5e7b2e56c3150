// Package sptree holds the axis-aligned cells used by the space-partitioning
// tree that approximates repulsive t-SNE forces.
package sptree

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrDimensionMismatch is returned when a cell's center and half-widths
// differ in dimensionality.
var ErrDimensionMismatch = errors.New("sptree: dimension mismatch")

// Cell is an axis-aligned box given by its center and per-dimension half-width.
type Cell[T constraints.Float] struct {
	Center    []T
	HalfWidth []T
}

// NewCell returns a cell, checking that center and halfWidth have the same length.
func NewCell[T constraints.Float](center, halfWidth []T) (Cell[T], error) {
	if len(center) != len(halfWidth) {
		return Cell[T]{}, fmt.Errorf("new cell: center has %d dims, half-width %d: %w",
			len(center), len(halfWidth), ErrDimensionMismatch)
	}
	return Cell[T]{Center: center, HalfWidth: halfWidth}, nil
}

// Dims returns the cell dimensionality.
func (c Cell[T]) Dims() int {
	return len(c.Center)
}

// Contains reports whether point lies inside the cell, bounds included.
func (c Cell[T]) Contains(point []T) bool {
	return Contains(c.Center, c.HalfWidth, point, c.Dims())
}

// Contains reports whether the first d coordinates of point satisfy
// center[k]-halfWidth[k] <= point[k] <= center[k]+halfWidth[k].
// It returns on the first dimension that fails.
func Contains[T constraints.Float](center, halfWidth, point []T, d int) bool {
	for k := 0; k < d; k++ {
		if center[k]-halfWidth[k] > point[k] {
			return false
		}
		if center[k]+halfWidth[k] < point[k] {
			return false
		}
	}
	return true
}
