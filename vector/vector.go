package vector

import (
	"fmt"
	"slices"
)

// Kind identifies which variant a Vector holds.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Vector.
	KindInvalid Kind = iota
	// KindDense marks a dense vector.
	KindDense
	// KindSparse marks a sparse vector.
	KindSparse
)

func (k Kind) String() string {
	switch k {
	case KindDense:
		return "Dense"
	case KindSparse:
		return "Sparse"
	case KindInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Vector holds either a dense or a sparse vector. The variants never convert
// into one another.
type Vector struct {
	kind   Kind
	dense  []float32
	sparse Sparse
}

// OfDense wraps dense components. The slice is not copied.
func OfDense(components []float32) Vector {
	return Vector{kind: KindDense, dense: components}
}

// OfSparse wraps a sparse vector. The slices are not copied.
func OfSparse(s Sparse) Vector {
	return Vector{kind: KindSparse, sparse: s}
}

// Kind returns the variant tag.
func (v Vector) Kind() Kind { return v.kind }

// AsDense returns the dense components if v is dense.
func (v Vector) AsDense() ([]float32, bool) {
	if v.kind != KindDense {
		return nil, false
	}
	return v.dense, true
}

// AsSparse returns the sparse vector if v is sparse.
func (v Vector) AsSparse() (Sparse, bool) {
	if v.kind != KindSparse {
		return Sparse{}, false
	}
	return v.sparse, true
}

// Len returns the dimensionality of a dense vector or the number of stored
// elements of a sparse vector.
func (v Vector) Len() int {
	switch v.kind {
	case KindDense:
		return len(v.dense)
	case KindSparse:
		return v.sparse.Len()
	default:
		return 0
	}
}

// Clone returns a copy that shares no memory with v.
func (v Vector) Clone() Vector {
	switch v.kind {
	case KindDense:
		return OfDense(slices.Clone(v.dense))
	case KindSparse:
		return OfSparse(v.sparse.Clone())
	default:
		return Vector{}
	}
}

// Equal reports whether v and o hold the same variant with the same values.
func (v Vector) Equal(o Vector) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindDense:
		return slices.Equal(v.dense, o.dense)
	case KindSparse:
		return v.sparse.Equal(o.sparse)
	default:
		return true
	}
}

func (v Vector) String() string {
	switch v.kind {
	case KindDense:
		return fmt.Sprintf("Dense(%v)", v.dense)
	case KindSparse:
		return fmt.Sprintf("Sparse(%v:%v)", v.sparse.Indices, v.sparse.Values)
	default:
		return "Invalid"
	}
}
