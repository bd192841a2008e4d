package structdiff

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordDiff is called after each diff operation. kind is the
	// container variant (KindInvalid for rejected kind mismatches),
	// duration is the total time taken, err is nil if successful.
	RecordDiff(kind Kind, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDiff(Kind, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DiffCount      atomic.Int64
	DiffErrors     atomic.Int64
	DiffTotalNanos atomic.Int64
}

// RecordDiff implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDiff(_ Kind, duration time.Duration, err error) {
	b.DiffCount.Add(1)
	b.DiffTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DiffErrors.Add(1)
	}
}
