package vector

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrLengthMismatch is returned when a sparse vector's indices and values differ in length.
var ErrLengthMismatch = errors.New("sparse vector indices and values differ in length")

// ErrDuplicateIndex indicates that a sparse vector repeats an index.
type ErrDuplicateIndex struct {
	Index uint32
}

func (e *ErrDuplicateIndex) Error() string {
	return fmt.Sprintf("sparse vector has duplicate index %d", e.Index)
}

// Sparse is a sparse vector stored as parallel Indices/Values slices.
//
// Scoring assumes Indices are strictly increasing. Construction does not
// sort; call SortByIndices (or have a scorer do it) first.
type Sparse struct {
	Indices []uint32
	Values  []float32
}

// NewSparse builds a sparse vector and checks that both slices have the same length.
func NewSparse(indices []uint32, values []float32) (Sparse, error) {
	s := Sparse{Indices: indices, Values: values}
	if err := s.Validate(); err != nil {
		return Sparse{}, err
	}
	return s, nil
}

// Len returns the number of stored (non-zero) elements.
func (s Sparse) Len() int { return len(s.Indices) }

// IsEmpty reports whether the vector stores no elements.
func (s Sparse) IsEmpty() bool { return len(s.Indices) == 0 }

// Validate checks the structural invariants that hold regardless of order.
func (s Sparse) Validate() error {
	if len(s.Indices) != len(s.Values) {
		return fmt.Errorf("%w: %d indices, %d values", ErrLengthMismatch, len(s.Indices), len(s.Values))
	}
	return nil
}

// IsSorted reports whether the indices are strictly increasing.
func (s Sparse) IsSorted() bool {
	for i := 1; i < len(s.Indices); i++ {
		if s.Indices[i-1] >= s.Indices[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s Sparse) Clone() Sparse {
	return Sparse{
		Indices: slices.Clone(s.Indices),
		Values:  slices.Clone(s.Values),
	}
}

// Equal reports whether both vectors hold the same pairs in the same order.
func (s Sparse) Equal(o Sparse) bool {
	return slices.Equal(s.Indices, o.Indices) && slices.Equal(s.Values, o.Values)
}

// SortByIndices sorts the pairs by index in place.
// It fails if the lengths differ or an index repeats; on failure the
// pair order is unspecified.
func (s Sparse) SortByIndices() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.IsSorted() {
		sort.Sort(byIndex(s))
	}
	for i := 1; i < len(s.Indices); i++ {
		if s.Indices[i-1] == s.Indices[i] {
			return &ErrDuplicateIndex{Index: s.Indices[i]}
		}
	}
	return nil
}

// Score returns the dot product of two sorted sparse vectors.
// ok is false when the vectors share no index.
func (s Sparse) Score(other Sparse) (score float32, ok bool) {
	i, j := 0, 0
	for i < len(s.Indices) && j < len(other.Indices) {
		a, b := s.Indices[i], other.Indices[j]
		switch {
		case a < b:
			i++
		case a > b:
			j++
		default:
			score += s.Values[i] * other.Values[j]
			ok = true
			i++
			j++
		}
	}
	return score, ok
}

type byIndex Sparse

func (b byIndex) Len() int           { return len(b.Indices) }
func (b byIndex) Less(i, j int) bool { return b.Indices[i] < b.Indices[j] }
func (b byIndex) Swap(i, j int) {
	b.Indices[i], b.Indices[j] = b.Indices[j], b.Indices[i]
	b.Values[i], b.Values[j] = b.Values[j], b.Values[i]
}
