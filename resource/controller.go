// Package resource governs how much scoring work runs at once.
//
// The Controller provides two limits for fan-out scoring:
//
//   - Workers: a weighted semaphore capping concurrent scoring workers
//   - CPU units: a token bucket throttling hardware-counter CPU units per second
//
// All methods handle a nil Controller gracefully - they become no-ops.
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:     4,
//	    CPUUnitsPerSec: 50_000_000,
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
package resource

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrent scoring workers.
	// If 0, defaults to 1.
	MaxWorkers int64

	// CPUUnitsPerSec is the sustained CPU-unit throughput across all workers.
	// If 0, unlimited.
	CPUUnitsPerSec int64
}

// Controller manages scoring concurrency and CPU admission.
type Controller struct {
	cfg Config

	workers *semaphore.Weighted

	cpuLimiter *rate.Limiter
	cpuAdmit   atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.CPUUnitsPerSec > 0 {
		c.cpuLimiter = rate.NewLimiter(rate.Limit(cfg.CPUUnitsPerSec), int(cfg.CPUUnitsPerSec))
	}

	return c
}

// MaxWorkers returns the configured worker limit (1 for a nil Controller).
func (c *Controller) MaxWorkers() int {
	if c == nil {
		return 1
	}
	return int(c.cfg.MaxWorkers)
}

// AcquireWorker reserves a worker slot, blocking until one is free.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workers.Acquire(ctx, 1)
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workers.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workers.Release(1)
}

// AcquireCPU waits until the CPU limit admits units. Requests larger than the
// bucket are admitted in bucket-sized steps.
func (c *Controller) AcquireCPU(ctx context.Context, units uint64) error {
	if c == nil || c.cpuLimiter == nil || units == 0 {
		return nil
	}
	burst := uint64(c.cpuLimiter.Burst())
	for units > 0 {
		n := min(units, burst)
		if err := c.cpuLimiter.WaitN(ctx, int(n)); err != nil {
			return err
		}
		c.cpuAdmit.Add(int64(n))
		units -= n
	}
	return nil
}

// TryAcquireCPU attempts to admit units without blocking. Requests larger
// than the bucket are never admitted.
func (c *Controller) TryAcquireCPU(units uint64) bool {
	if c == nil || c.cpuLimiter == nil {
		return true
	}
	if units > uint64(c.cpuLimiter.Burst()) {
		return false
	}
	if c.cpuLimiter.AllowN(time.Now(), int(units)) {
		c.cpuAdmit.Add(int64(units))
		return true
	}
	return false
}

// AdmittedCPU returns the total CPU units admitted by the limiter.
func (c *Controller) AdmittedCPU() int64 {
	if c == nil {
		return 0
	}
	return c.cpuAdmit.Load()
}
