package storage

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vecscore/vector"
)

// liveSet tracks which offsets hold a vector.
type liveSet struct {
	rb *roaring.Bitmap
}

func newLiveSet() liveSet {
	return liveSet{rb: roaring.New()}
}

func (l liveSet) all() iter.Seq[PointOffset] {
	return func(yield func(PointOffset) bool) {
		it := l.rb.Iterator()
		for it.HasNext() {
			if !yield(PointOffset(it.Next())) {
				return
			}
		}
	}
}

// SparseStore is an in-memory SparseStorage.
//
// Vectors are copied and sorted on write so every stored vector satisfies
// the scoring precondition. Concurrent reads are safe; writes take an
// exclusive lock.
type SparseStore struct {
	mu      sync.RWMutex
	vectors []vector.Sparse
	live    liveSet
}

// NewSparseStore creates an empty sparse store.
func NewSparseStore() *SparseStore {
	return &SparseStore{live: newLiveSet()}
}

// SetSparse stores a copy of v at offset, replacing any previous vector.
func (s *SparseStore) SetSparse(offset PointOffset, v vector.Sparse) error {
	owned := v.Clone()
	if err := owned.SortByIndices(); err != nil {
		return fmt.Errorf("storage: offset %d: %w", offset, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if int(offset) >= len(s.vectors) {
		s.vectors = slices.Grow(s.vectors, int(offset)+1-len(s.vectors))[:int(offset)+1]
	}
	s.vectors[offset] = owned
	s.live.rb.Add(uint32(offset))
	return nil
}

// GetSparse implements SparseStorage.
func (s *SparseStore) GetSparse(offset PointOffset) (vector.Sparse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.live.rb.Contains(uint32(offset)) {
		return vector.Sparse{}, false
	}
	return s.vectors[offset], true
}

// Delete removes the vector at offset.
func (s *SparseStore) Delete(offset PointOffset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live.rb.CheckedRemove(uint32(offset)) {
		return fmt.Errorf("storage: offset %d: %w", offset, ErrNotFound)
	}
	s.vectors[offset] = vector.Sparse{}
	return nil
}

// IsDeleted reports whether offset lies within the store but holds no vector.
func (s *SparseStore) IsDeleted(offset PointOffset) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int(offset) < len(s.vectors) && !s.live.rb.Contains(uint32(offset))
}

// Len returns the number of offset slots, including deleted ones.
func (s *SparseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vectors)
}

// Live returns the number of stored vectors.
func (s *SparseStore) Live() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int(s.live.rb.GetCardinality())
}

// Offsets returns the live offsets in ascending order as of the call.
func (s *SparseStore) Offsets() []PointOffset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Collect(s.live.all())
}

// DenseStore is an in-memory DenseStorage with a fixed dimension.
//
// Vectors are stored contiguously: vector i = data[i*dim : (i+1)*dim].
type DenseStore struct {
	mu   sync.RWMutex
	dim  int
	data []float32
	live liveSet
}

// NewDenseStore creates an empty dense store.
func NewDenseStore(dim int) (*DenseStore, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("storage: invalid dimension %d", dim)
	}
	return &DenseStore{dim: dim, live: newLiveSet()}, nil
}

// Dimension implements DenseStorage.
func (s *DenseStore) Dimension() int { return s.dim }

// SetDense stores a copy of v at offset.
func (s *DenseStore) SetDense(offset PointOffset, v []float32) error {
	if len(v) != s.dim {
		return fmt.Errorf("storage: %w: expected %d, got %d", ErrWrongDimension, s.dim, len(v))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	end := (int(offset) + 1) * s.dim
	if end > len(s.data) {
		s.data = slices.Grow(s.data, end-len(s.data))[:end]
	}
	copy(s.data[int(offset)*s.dim:end], v)
	s.live.rb.Add(uint32(offset))
	return nil
}

// GetDense implements DenseStorage.
func (s *DenseStore) GetDense(offset PointOffset) ([]float32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.live.rb.Contains(uint32(offset)) {
		return nil, false
	}
	start := int(offset) * s.dim
	return s.data[start : start+s.dim : start+s.dim], true
}

// Delete removes the vector at offset.
func (s *DenseStore) Delete(offset PointOffset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live.rb.CheckedRemove(uint32(offset)) {
		return fmt.Errorf("storage: offset %d: %w", offset, ErrNotFound)
	}
	return nil
}

// Live returns the number of stored vectors.
func (s *DenseStore) Live() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int(s.live.rb.GetCardinality())
}

// Offsets returns the live offsets in ascending order as of the call.
func (s *DenseStore) Offsets() []PointOffset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Collect(s.live.all())
}
