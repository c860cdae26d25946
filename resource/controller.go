// Package resource provides scratch-memory budgeting for the algorithm
// engines. Merge, radix, and counting sort need transient scratch space;
// a Controller puts a hard ceiling on it so a pathological input (such as
// a counting sort over a huge value range) fails with a status instead of
// exhausting the process.
package resource

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds resource limits.
type Config struct {
	// ScratchLimitBytes is the hard limit for transient scratch memory.
	// If 0, no hard limit is enforced (only tracking).
	ScratchLimitBytes int64
}

// Controller manages scratch memory reservations. A nil Controller is
// valid and enforces nothing.
type Controller struct {
	cfg Config

	scratchSem  *semaphore.Weighted // nil if unlimited
	scratchUsed atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	if cfg.ScratchLimitBytes > 0 {
		c.scratchSem = semaphore.NewWeighted(cfg.ScratchLimitBytes)
	}
	return c
}

// TryAcquireScratch attempts to reserve scratch memory without blocking.
// The engines run synchronously on the caller's goroutine, so a reservation
// that cannot be granted immediately is reported as exhaustion rather than
// waited on.
func (c *Controller) TryAcquireScratch(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}
	if c.scratchSem != nil {
		if !c.scratchSem.TryAcquire(bytes) {
			return false
		}
	}
	c.scratchUsed.Add(bytes)
	return true
}

// ReleaseScratch releases reserved scratch memory.
func (c *Controller) ReleaseScratch(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.scratchSem != nil {
		c.scratchSem.Release(bytes)
	}
	c.scratchUsed.Add(-bytes)
}

// ScratchUsage returns the currently reserved scratch memory in bytes.
func (c *Controller) ScratchUsage() int64 {
	if c == nil {
		return 0
	}
	return c.scratchUsed.Load()
}
