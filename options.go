package vecscore

import (
	"github.com/hupe1980/vecscore/hwcounter"
	"github.com/hupe1980/vecscore/resource"
)

const defaultChunkSize = 256

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	accumulator      *hwcounter.Accumulator
	parallelism      int
	chunkSize        int
}

// Option configures ScoreOffsets.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		chunkSize:        defaultChunkSize,
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecscore.BasicMetricsCollector{}
//	res, err := vecscore.ScoreOffsets(ctx, factory, offsets, vecscore.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController shares worker slots and CPU admission with other
// scoring calls. Workers wait for a slot before scoring and for CPU admission
// after every chunk.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithAccumulator merges every worker's hardware usage into acc in addition
// to the returned Result.
func WithAccumulator(acc *hwcounter.Accumulator) Option {
	return func(o *options) {
		o.accumulator = acc
	}
}

// WithParallelism sets the number of concurrent workers.
// 0 uses the resource controller's worker limit (1 without a controller).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithChunkSize sets how many offsets one worker scores with one scorer.
// Values <= 0 keep the default of 256.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}
