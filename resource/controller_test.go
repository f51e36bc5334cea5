package resource

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})
	assert.Equal(t, 2, c.MaxWorkers())

	require.NoError(t, c.AcquireWorker(t.Context()))
	require.NoError(t, c.AcquireWorker(t.Context()))

	assert.False(t, c.TryAcquireWorker())

	c.ReleaseWorker()

	assert.True(t, c.TryAcquireWorker())
}

func TestController_WorkerAcquireHonorsContext(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, 1, c.MaxWorkers())
	require.NoError(t, c.AcquireWorker(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireWorker(ctx), context.DeadlineExceeded)
}

func TestController_CPU(t *testing.T) {
	c := NewController(Config{CPUUnitsPerSec: 100})

	assert.True(t, c.TryAcquireCPU(100))
	assert.False(t, c.TryAcquireCPU(50), "bucket is drained")
	assert.Equal(t, int64(100), c.AdmittedCPU())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	assert.Error(t, c.AcquireCPU(ctx, 10))
}

func TestController_CPULargerThanBurst(t *testing.T) {
	c := NewController(Config{CPUUnitsPerSec: 1_000_000})

	assert.False(t, c.TryAcquireCPU(1_000_001))
	assert.False(t, c.TryAcquireCPU(math.MaxUint64))
	assert.Equal(t, int64(0), c.AdmittedCPU())

	require.NoError(t, c.AcquireCPU(t.Context(), 1_500_000))
	assert.Equal(t, int64(1_500_000), c.AdmittedCPU())
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	assert.Equal(t, 1, c.MaxWorkers())
	assert.NoError(t, c.AcquireWorker(t.Context()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	assert.NoError(t, c.AcquireCPU(t.Context(), 1<<40))
	assert.True(t, c.TryAcquireCPU(1))
	assert.Equal(t, int64(0), c.AdmittedCPU())
}

func TestController_UnlimitedCPU(t *testing.T) {
	c := NewController(Config{MaxWorkers: 3})
	assert.NoError(t, c.AcquireCPU(t.Context(), 1<<40))
	assert.True(t, c.TryAcquireCPU(1<<20))
	assert.Equal(t, int64(0), c.AdmittedCPU())
}
