// Package hwcounter accounts for the compute cost of scoring operations.
//
// A Cell is a per-scorer measurement window: scorers add CPU units to it on
// every comparison and callers Take the window when a search task finishes.
// An Accumulator merges the windows of many cells, e.g. one per fan-out
// worker.
//
// A Cell can additionally enforce a budget. In checked mode with a non-zero
// limit the window is marked exhausted once it exceeds the limit; scoring
// itself never fails, callers consult Err between scored points.
package hwcounter

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrBudgetExhausted is returned by Err once a checked cell exceeds its limit.
var ErrBudgetExhausted = errors.New("hardware budget exhausted")

// Usage is the content of one measurement window.
type Usage struct {
	// CPU is the number of CPU units counted in the window.
	CPU uint64
	// Exhausted is true if a checked limit was exceeded during the window.
	Exhausted bool
}

func (u Usage) String() string {
	return fmt.Sprintf("cpu=%d exhausted=%t", u.CPU, u.Exhausted)
}

// Cell counts CPU units for a single scorer. It is not safe for concurrent
// use; give every worker its own cell.
type Cell struct {
	cpu       uint64
	limit     uint64
	checked   bool
	exhausted bool
}

// NewCell returns an unchecked cell without a limit.
func NewCell() *Cell {
	return &Cell{}
}

// Incr adds units to the current window.
func (c *Cell) Incr(units int) {
	if units <= 0 {
		return
	}
	c.cpu += uint64(units)
	if c.checked && c.limit > 0 && c.cpu > c.limit {
		c.exhausted = true
	}
}

// CPU returns the units counted so far without resetting the window.
func (c *Cell) CPU() uint64 { return c.cpu }

// Take returns the current window and starts a new one.
func (c *Cell) Take() Usage {
	u := Usage{CPU: c.cpu, Exhausted: c.exhausted}
	c.cpu = 0
	c.exhausted = false
	return u
}

// SetChecked toggles budget enforcement. Units are always counted.
// Turning enforcement off clears an exhausted window.
func (c *Cell) SetChecked(checked bool) {
	c.checked = checked
	c.exhausted = checked && c.limit > 0 && c.cpu > c.limit
}

// SetLimit sets the CPU budget per window. 0 = unlimited.
func (c *Cell) SetLimit(units uint64) {
	c.limit = units
}

// Err returns ErrBudgetExhausted if the current window exceeded a checked limit.
func (c *Cell) Err() error {
	if c.exhausted {
		return fmt.Errorf("%w: %d cpu units, limit %d", ErrBudgetExhausted, c.cpu, c.limit)
	}
	return nil
}

// Accumulator merges usage windows. It is safe for concurrent use.
type Accumulator struct {
	cpu       atomic.Uint64
	windows   atomic.Int64
	exhausted atomic.Int64
}

// Add merges u into the accumulator.
func (a *Accumulator) Add(u Usage) {
	a.cpu.Add(u.CPU)
	a.windows.Add(1)
	if u.Exhausted {
		a.exhausted.Add(1)
	}
}

// CPU returns the total CPU units merged so far.
func (a *Accumulator) CPU() uint64 { return a.cpu.Load() }

// Windows returns the number of merged windows.
func (a *Accumulator) Windows() int64 { return a.windows.Load() }

// ExhaustedWindows returns how many merged windows exceeded a checked limit.
func (a *Accumulator) ExhaustedWindows() int64 { return a.exhausted.Load() }

// Usage returns the merged total as a single window.
func (a *Accumulator) Usage() Usage {
	return Usage{CPU: a.CPU(), Exhausted: a.ExhaustedWindows() > 0}
}
