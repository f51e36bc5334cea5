package scorer

import (
	"fmt"

	"github.com/hupe1980/vecscore/hwcounter"
	"github.com/hupe1980/vecscore/query"
	"github.com/hupe1980/vecscore/storage"
	"github.com/hupe1980/vecscore/vector"
)

// SparseCustomQueryScorer scores stored sparse vectors against a query of
// sparse examples.
//
// Every comparison charges len(example)+len(other) CPU units, regardless of
// how many indices actually overlap. A comparison without overlap scores 0.
type SparseCustomQueryScorer[S storage.SparseStorage] struct {
	storage S
	query   query.Query[vector.Sparse]
	counter *hwcounter.Cell
}

var _ QueryScorer[vector.Sparse] = (*SparseCustomQueryScorer[storage.SparseStorage])(nil)

// NewSparseCustomQueryScorer sorts a copy of every example of q by index and
// binds the result to s. The caller's query is left untouched. It fails if
// any example is malformed.
func NewSparseCustomQueryScorer[S storage.SparseStorage](q query.Query[vector.Sparse], s S, optFns ...Option) (*SparseCustomQueryScorer[S], error) {
	o := applyOptions(optFns)

	sorted, err := query.Transform(q, func(v vector.Sparse) (vector.Sparse, error) {
		v = v.Clone()
		if err := v.SortByIndices(); err != nil {
			return vector.Sparse{}, err
		}
		return v, nil
	})
	if err != nil {
		o.logger.Warn("sparse custom scorer rejected query", "error", err)
		return nil, fmt.Errorf("sparse custom scorer: %w", err)
	}

	o.logger.Debug("sparse custom scorer created",
		"query", fmt.Sprintf("%T", sorted),
		"examples", len(sorted.Examples()),
		"checked", o.checked,
	)

	return &SparseCustomQueryScorer[S]{
		storage: s,
		query:   sorted,
		counter: o.newCell(),
	}, nil
}

// Query returns the normalized query the scorer compares against.
func (sc *SparseCustomQueryScorer[S]) Query() query.Query[vector.Sparse] { return sc.query }

// ScoreStored scores the sparse vector stored at offset.
// It panics if the storage has no vector at offset.
func (sc *SparseCustomQueryScorer[S]) ScoreStored(offset storage.PointOffset) float32 {
	stored, ok := sc.storage.GetSparse(offset)
	if !ok {
		panic(fmt.Sprintf("sparse custom scorer: no sparse vector at offset %d", offset))
	}
	return sc.Score(stored)
}

// Score scores v. An unsorted v is scored through a sorted copy; v itself
// is never modified. It panics if v repeats an index.
func (sc *SparseCustomQueryScorer[S]) Score(v vector.Sparse) float32 {
	if !v.IsSorted() {
		v = v.Clone()
		if err := v.SortByIndices(); err != nil {
			panic(fmt.Sprintf("sparse custom scorer: %v", err))
		}
	}
	return sc.query.ScoreBy(func(example vector.Sparse) float32 {
		sc.counter.Incr(example.Len() + v.Len())
		score, _ := example.Score(v)
		return score
	})
}

// ScoreInternal is not supported: a custom query is defined by its own
// examples, not by a pair of stored points. It always panics.
func (sc *SparseCustomQueryScorer[S]) ScoreInternal(a, b storage.PointOffset) float32 {
	panic(fmt.Sprintf("sparse custom scorer: cannot score stored points %d and %d against each other", a, b))
}

// HardwareCounter implements QueryScorer.
func (sc *SparseCustomQueryScorer[S]) HardwareCounter() hwcounter.Usage {
	return sc.counter.Take()
}

// SetHardwareCounterChecked implements QueryScorer.
func (sc *SparseCustomQueryScorer[S]) SetHardwareCounterChecked(checked bool) {
	sc.counter.SetChecked(checked)
}

// Err implements QueryScorer.
func (sc *SparseCustomQueryScorer[S]) Err() error {
	return sc.counter.Err()
}
