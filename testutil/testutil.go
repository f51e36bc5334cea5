package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vecscore/distance"
	"github.com/hupe1980/vecscore/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
func (r *RNG) UnitVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = float32(r.rand.NormFloat64())
		}
		if !distance.NormalizeL2InPlace(vec) {
			vec[0] = 1
		}
		vectors[i] = vec
	}

	return vectors
}

// SparseVectors generates sparse vectors with nnz distinct indices drawn
// from [0, vocab) and values in (0, 1]. Indices are deliberately left
// unsorted, like raw embedder output.
func (r *RNG) SparseVectors(num, vocab, nnz int) []vector.Sparse {
	r.mu.Lock()
	defer r.mu.Unlock()

	nnz = min(nnz, vocab)
	vectors := make([]vector.Sparse, num)

	for i := range num {
		indices := make([]uint32, nnz)
		values := make([]float32, nnz)
		for j, idx := range r.rand.Perm(vocab)[:nnz] {
			indices[j] = uint32(idx)
			values[j] = 1 - r.rand.Float32()
		}
		vectors[i] = vector.Sparse{Indices: indices, Values: values}
	}

	return vectors
}
