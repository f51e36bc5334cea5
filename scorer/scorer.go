// Package scorer binds a query to a vector storage backend and produces
// similarity scores while accounting for their compute cost.
//
// A scorer belongs to a single search task. Its hardware counter is not safe
// for concurrent use; for parallel fan-out give every worker its own scorer
// over the same (read-only) storage.
package scorer

import (
	"log/slog"

	"github.com/hupe1980/vecscore/hwcounter"
	"github.com/hupe1980/vecscore/storage"
)

// QueryScorer scores stored points or external vectors of type T against a query.
type QueryScorer[T any] interface {
	// ScoreStored scores the vector stored at offset. The offset must be valid.
	ScoreStored(offset storage.PointOffset) float32

	// Score scores an external vector. Sparse scorers accept vectors in
	// any index order.
	Score(v T) float32

	// ScoreInternal scores two stored points against each other.
	ScoreInternal(a, b storage.PointOffset) float32

	// HardwareCounter returns the cost counted since the previous call and resets it.
	HardwareCounter() hwcounter.Usage

	// SetHardwareCounterChecked toggles budget enforcement of the counter.
	SetHardwareCounterChecked(checked bool)

	// Err reports whether a checked budget is exhausted.
	Err() error
}

type options struct {
	logger   *slog.Logger
	checked  bool
	cpuLimit uint64
}

// Option configures a scorer.
type Option func(*options)

// WithLogger sets the logger used on construction. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithChecked starts the scorer's counter in checked mode.
func WithChecked(checked bool) Option {
	return func(o *options) {
		o.checked = checked
	}
}

// WithCPULimit sets the CPU budget enforced in checked mode. 0 = unlimited.
func WithCPULimit(units uint64) Option {
	return func(o *options) {
		o.cpuLimit = units
	}
}

func applyOptions(optFns []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

func (o options) newCell() *hwcounter.Cell {
	c := hwcounter.NewCell()
	c.SetLimit(o.cpuLimit)
	c.SetChecked(o.checked)
	return c
}
