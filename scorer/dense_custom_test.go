package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecscore/distance"
	"github.com/hupe1980/vecscore/query"
	"github.com/hupe1980/vecscore/storage"
)

func newDenseStore(t *testing.T, dim int, vectors ...[]float32) *storage.DenseStore {
	t.Helper()
	s, err := storage.NewDenseStore(dim)
	require.NoError(t, err)
	for i, v := range vectors {
		require.NoError(t, s.SetDense(storage.PointOffset(i), v))
	}
	return s
}

func TestDenseCustomQueryScorer_Dot(t *testing.T) {
	store := newDenseStore(t, 3, []float32{1, 2, 3}, []float32{0, 0, 1})

	sc, err := NewDenseCustomQueryScorer(query.NewNearest([]float32{4, 5, 6}), distance.MetricDot, store)
	require.NoError(t, err)

	assert.Equal(t, float32(32), sc.ScoreStored(0))
	assert.Equal(t, float32(6), sc.ScoreStored(1))
	assert.Equal(t, uint64(6), sc.HardwareCounter().CPU)

	assert.Equal(t, float32(32), sc.Score([]float32{1, 2, 3}))
}

func TestDenseCustomQueryScorer_CosinePreprocessesExamples(t *testing.T) {
	stored := distance.MetricCosine.PreprocessVector([]float32{3, 4})
	store := newDenseStore(t, 2, stored)

	example := []float32{6, 8}
	sc, err := NewDenseCustomQueryScorer(query.NewNearest(example), distance.MetricCosine, store)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, sc.ScoreStored(0), 1e-6)
	assert.InDelta(t, 1.0, sc.Score([]float32{30, 40}), 1e-6)
	assert.Equal(t, []float32{6, 8}, example, "caller's example must stay untouched")
}

func TestDenseCustomQueryScorer_Context(t *testing.T) {
	store := newDenseStore(t, 2, []float32{1, 0}, []float32{0, 1})

	q := query.NewContext([]query.ContextPair[[]float32]{
		{Positive: []float32{1, 0}, Negative: []float32{0, 1}},
	})
	sc, err := NewDenseCustomQueryScorer(q, distance.MetricL2, store)
	require.NoError(t, err)

	assert.Equal(t, float32(0), sc.ScoreStored(0), "closer to the positive")
	assert.Less(t, sc.ScoreStored(1), float32(0), "closer to the negative")
}

func TestDenseCustomQueryScorer_Errors(t *testing.T) {
	store := newDenseStore(t, 2, []float32{1, 0})

	_, err := NewDenseCustomQueryScorer(query.NewNearest([]float32{1, 2, 3}), distance.MetricDot, store)
	assert.ErrorIs(t, err, storage.ErrWrongDimension)

	sc, err := NewDenseCustomQueryScorer(query.NewNearest([]float32{1, 2}), distance.MetricDot, store)
	require.NoError(t, err)

	assert.Panics(t, func() { sc.ScoreStored(3) })
	assert.Panics(t, func() { sc.ScoreInternal(0, 0) })
}
