package vecscore

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecscore/distance"
	"github.com/hupe1980/vecscore/hwcounter"
	"github.com/hupe1980/vecscore/query"
	"github.com/hupe1980/vecscore/scorer"
	"github.com/hupe1980/vecscore/storage"
	"github.com/hupe1980/vecscore/vector"
)

// ScorerFactory builds a fresh scorer. ScoreOffsets calls it once per chunk
// so that no scorer is shared between goroutines.
type ScorerFactory[T any] func() (scorer.QueryScorer[T], error)

// SparseScorers returns a factory of SparseCustomQueryScorers over q and s.
func SparseScorers[S storage.SparseStorage](q query.Query[vector.Sparse], s S, optFns ...scorer.Option) ScorerFactory[vector.Sparse] {
	return func() (scorer.QueryScorer[vector.Sparse], error) {
		sc, err := scorer.NewSparseCustomQueryScorer(q, s, optFns...)
		if err != nil {
			return nil, err
		}
		return sc, nil
	}
}

// DenseScorers returns a factory of DenseCustomQueryScorers over q and s.
func DenseScorers[S storage.DenseStorage](q query.Query[[]float32], metric distance.Metric, s S, optFns ...scorer.Option) ScorerFactory[[]float32] {
	return func() (scorer.QueryScorer[[]float32], error) {
		sc, err := scorer.NewDenseCustomQueryScorer(q, metric, s, optFns...)
		if err != nil {
			return nil, err
		}
		return sc, nil
	}
}

// Result holds the scores of a ScoreOffsets call.
type Result struct {
	// Scores[i] is the score of offsets[i].
	Scores []float32
	// Usage is the merged hardware usage of all workers.
	Usage hwcounter.Usage
}

// ScoreOffsets scores every offset with scorers built by newScorer.
//
// Offsets are split into chunks; each chunk is scored by its own scorer on a
// worker goroutine. The context and the scorer's checked budget are consulted
// between points, never inside a single score. Offsets must be valid for the
// scorers' storage; an unresolvable offset panics.
func ScoreOffsets[T any](ctx context.Context, newScorer ScorerFactory[T], offsets []storage.PointOffset, optFns ...Option) (Result, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if o.parallelism < 0 {
		return Result{}, ErrInvalidParallelism
	}
	workers := o.parallelism
	if workers == 0 {
		workers = o.controller.MaxWorkers()
	}

	start := time.Now()
	var acc hwcounter.Accumulator
	scores := make([]float32, len(offsets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < len(offsets); lo += o.chunkSize {
		hi := min(lo+o.chunkSize, len(offsets))
		g.Go(func() error {
			return scoreChunk(gctx, &o, &acc, newScorer, offsets[lo:hi], scores[lo:hi])
		})
	}

	err := translateError(g.Wait())
	usage := acc.Usage()
	if o.accumulator != nil {
		o.accumulator.Add(usage)
	}

	o.metricsCollector.RecordScore(len(offsets), usage.CPU, time.Since(start), err)
	o.logger.LogScore(ctx, len(offsets), usage.CPU, acc.Windows(), err)

	if err != nil {
		return Result{Usage: usage}, err
	}
	return Result{Scores: scores, Usage: usage}, nil
}

func scoreChunk[T any](ctx context.Context, o *options, acc *hwcounter.Accumulator, newScorer ScorerFactory[T], offsets []storage.PointOffset, out []float32) error {
	if err := o.controller.AcquireWorker(ctx); err != nil {
		return err
	}
	defer o.controller.ReleaseWorker()

	buildStart := time.Now()
	sc, err := newScorer()
	o.metricsCollector.RecordScorerBuild(time.Since(buildStart), err)
	if err != nil {
		return err
	}

	for i, off := range offsets {
		if err := ctx.Err(); err != nil {
			acc.Add(sc.HardwareCounter())
			return err
		}
		out[i] = sc.ScoreStored(off)
		if err := sc.Err(); err != nil {
			usage := sc.HardwareCounter()
			acc.Add(usage)
			o.logger.LogBudgetExhausted(ctx, i+1, len(offsets), usage.CPU)
			return fmt.Errorf("offset %d: %w", off, err)
		}
	}

	usage := sc.HardwareCounter()
	acc.Add(usage)
	return o.controller.AcquireCPU(ctx, usage.CPU)
}
