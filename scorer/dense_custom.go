package scorer

import (
	"fmt"
	"slices"

	"github.com/hupe1980/vecscore/distance"
	"github.com/hupe1980/vecscore/hwcounter"
	"github.com/hupe1980/vecscore/query"
	"github.com/hupe1980/vecscore/storage"
)

// DenseCustomQueryScorer scores stored dense vectors against a query of dense
// examples under a metric. Every comparison charges the dimension in CPU units.
type DenseCustomQueryScorer[S storage.DenseStorage] struct {
	storage S
	metric  distance.Metric
	query   query.Query[[]float32]
	counter *hwcounter.Cell
}

var _ QueryScorer[[]float32] = (*DenseCustomQueryScorer[storage.DenseStorage])(nil)

// NewDenseCustomQueryScorer preprocesses a copy of every example of q for
// metric and binds the result to s. It fails if an example does not match
// the storage dimension.
func NewDenseCustomQueryScorer[S storage.DenseStorage](q query.Query[[]float32], metric distance.Metric, s S, optFns ...Option) (*DenseCustomQueryScorer[S], error) {
	o := applyOptions(optFns)
	dim := s.Dimension()

	prepared, err := query.Transform(q, func(v []float32) ([]float32, error) {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: expected %d, got %d", storage.ErrWrongDimension, dim, len(v))
		}
		return metric.PreprocessVector(slices.Clone(v)), nil
	})
	if err != nil {
		o.logger.Warn("dense custom scorer rejected query", "metric", metric.String(), "error", err)
		return nil, fmt.Errorf("dense custom scorer: %w", err)
	}

	o.logger.Debug("dense custom scorer created",
		"query", fmt.Sprintf("%T", prepared),
		"metric", metric.String(),
		"dimension", dim,
	)

	return &DenseCustomQueryScorer[S]{
		storage: s,
		metric:  metric,
		query:   prepared,
		counter: o.newCell(),
	}, nil
}

// ScoreStored scores the dense vector stored at offset. Stored vectors are
// expected to be preprocessed on ingest. It panics if the storage has no
// vector at offset.
func (sc *DenseCustomQueryScorer[S]) ScoreStored(offset storage.PointOffset) float32 {
	stored, ok := sc.storage.GetDense(offset)
	if !ok {
		panic(fmt.Sprintf("dense custom scorer: no dense vector at offset %d", offset))
	}
	return sc.score(stored)
}

// Score preprocesses a copy of v for the metric and scores it.
func (sc *DenseCustomQueryScorer[S]) Score(v []float32) float32 {
	return sc.score(sc.metric.PreprocessVector(slices.Clone(v)))
}

func (sc *DenseCustomQueryScorer[S]) score(v []float32) float32 {
	return sc.query.ScoreBy(func(example []float32) float32 {
		sc.counter.Incr(len(example))
		return sc.metric.Similarity(example, v)
	})
}

// ScoreInternal is not supported for custom queries. It always panics.
func (sc *DenseCustomQueryScorer[S]) ScoreInternal(a, b storage.PointOffset) float32 {
	panic(fmt.Sprintf("dense custom scorer: cannot score stored points %d and %d against each other", a, b))
}

// HardwareCounter implements QueryScorer.
func (sc *DenseCustomQueryScorer[S]) HardwareCounter() hwcounter.Usage {
	return sc.counter.Take()
}

// SetHardwareCounterChecked implements QueryScorer.
func (sc *DenseCustomQueryScorer[S]) SetHardwareCounterChecked(checked bool) {
	sc.counter.SetChecked(checked)
}

// Err implements QueryScorer.
func (sc *DenseCustomQueryScorer[S]) Err() error {
	return sc.counter.Err()
}
