package algokit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// from the batch helpers. Implement it to integrate with monitoring
// systems; single synchronous calls are never instrumented.
type MetricsCollector interface {
	// RecordSort is called after each sort in a batch with the time taken
	// and the resulting status code.
	RecordSort(duration time.Duration, status int)

	// RecordSearch is called after each search in a batch with the time
	// taken and the index-or-status result.
	RecordSearch(duration time.Duration, result int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSort(time.Duration, int)   {}
func (NoopMetricsCollector) RecordSearch(time.Duration, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging without external dependencies.
type BasicMetricsCollector struct {
	SortCount        atomic.Int64
	SortErrors       atomic.Int64
	SortTotalNanos   atomic.Int64
	SearchCount      atomic.Int64
	SearchMisses     atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
}

func (b *BasicMetricsCollector) RecordSort(d time.Duration, status int) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(d.Nanoseconds())
	if status < 0 {
		b.SortErrors.Add(1)
	}
}

func (b *BasicMetricsCollector) RecordSearch(d time.Duration, result int) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(d.Nanoseconds())
	switch {
	case result == SearchNotFound:
		b.SearchMisses.Add(1)
	case result < 0:
		b.SearchErrors.Add(1)
	}
}
