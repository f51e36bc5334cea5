package vecscore

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LogScore(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogScore(t.Context(), 3, 42, 2, nil)
	assert.Contains(t, buf.String(), "scoring completed")
	assert.Contains(t, buf.String(), "cpu_units=42")
	assert.Contains(t, buf.String(), "windows=2")

	buf.Reset()
	l.LogScore(t.Context(), 3, 42, 2, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	l.LogBudgetExhausted(t.Context(), 1, 2, 3)
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	m.RecordScore(10, 100, 2*time.Millisecond, nil)
	m.RecordScore(5, 50, 4*time.Millisecond, errors.New("x"))
	m.RecordScorerBuild(time.Microsecond, nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.ScoreCount)
	assert.Equal(t, int64(1), stats.ScoreErrors)
	assert.Equal(t, int64(15), stats.ScoredPoints)
	assert.Equal(t, uint64(150), stats.ScoreCPUUnits)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.AvgScoreNanos)
	assert.Equal(t, int64(1), stats.ScorerBuilds)
	assert.Equal(t, int64(0), stats.ScorerBuildError)

	var _ MetricsCollector = NoopMetricsCollector{}
}
