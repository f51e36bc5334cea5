// Package storage defines the read contract scorers use to fetch stored
// vectors, plus in-memory implementations.
//
// Offsets are dense, segment-local identifiers produced by the index layer.
// Implementations must be safe for concurrent reads from many scorers.
// Returned vectors may alias internal memory and must be treated as
// read-only.
package storage

import (
	"errors"

	"github.com/hupe1980/vecscore/vector"
)

var (
	// ErrWrongDimension is returned when a vector doesn't match the store dimension.
	ErrWrongDimension = errors.New("wrong vector dimension")

	// ErrNotFound is returned when an offset holds no live vector.
	ErrNotFound = errors.New("vector not found")
)

// PointOffset is the segment-local position of a stored point.
type PointOffset uint32

// SparseStorage provides sparse vectors by offset.
type SparseStorage interface {
	GetSparse(offset PointOffset) (vector.Sparse, bool)
}

// DenseStorage provides dense vectors by offset.
type DenseStorage interface {
	Dimension() int
	GetDense(offset PointOffset) ([]float32, bool)
}
