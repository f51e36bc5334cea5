package vecscore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordScore is called after each ScoreOffsets call.
	// points is the number of offsets requested, cpuUnits the hardware cost
	// counted by all workers, err is nil if successful.
	RecordScore(points int, cpuUnits uint64, duration time.Duration, err error)

	// RecordScorerBuild is called after each scorer construction.
	RecordScorerBuild(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordScore(int, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordScorerBuild(time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	ScoreCount       atomic.Int64
	ScoreErrors      atomic.Int64
	ScoredPoints     atomic.Int64
	ScoreCPUUnits    atomic.Uint64
	ScoreTotalNanos  atomic.Int64
	ScorerBuilds     atomic.Int64
	ScorerBuildError atomic.Int64
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(points int, cpuUnits uint64, duration time.Duration, err error) {
	b.ScoreCount.Add(1)
	b.ScoredPoints.Add(int64(points))
	b.ScoreCPUUnits.Add(cpuUnits)
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScoreErrors.Add(1)
	}
}

// RecordScorerBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScorerBuild(_ time.Duration, err error) {
	b.ScorerBuilds.Add(1)
	if err != nil {
		b.ScorerBuildError.Add(1)
	}
}

// MetricsStats provides a snapshot of metrics.
type MetricsStats struct {
	ScoreCount       int64
	ScoreErrors      int64
	ScoredPoints     int64
	ScoreCPUUnits    uint64
	AvgScoreNanos    int64
	ScorerBuilds     int64
	ScorerBuildError int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	count := b.ScoreCount.Load()
	var avg int64
	if count > 0 {
		avg = b.ScoreTotalNanos.Load() / count
	}
	return MetricsStats{
		ScoreCount:       count,
		ScoreErrors:      b.ScoreErrors.Load(),
		ScoredPoints:     b.ScoredPoints.Load(),
		ScoreCPUUnits:    b.ScoreCPUUnits.Load(),
		AvgScoreNanos:    avg,
		ScorerBuilds:     b.ScorerBuilds.Load(),
		ScorerBuildError: b.ScorerBuildError.Load(),
	}
}
