package multivec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    gramCounter   prometheus.Counter
//	    gramHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGram(inners int, duration time.Duration) {
//	    p.gramCounter.Inc()
//	    // ... record duration, inner-product volume, etc.
//	}
type MetricsCollector interface {
	// RecordGram is called after each batched inner-product computation
	// (DotVector, Dot, GramSelf). inners is the number of inner products
	// actually computed (the symmetric path counts each mirrored pair
	// once), duration is the total time taken.
	RecordGram(inners int, duration time.Duration)

	// RecordUpdate is called after each batched mutator (Reduce, Axpy,
	// AxpyEach, ScaleEach, Zero, MulMatrix, Orthogonalize). count is the
	// number of elements touched.
	RecordUpdate(count int, duration time.Duration)

	// RecordNorms is called after each batched norm computation.
	RecordNorms(count int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGram(int, time.Duration)   {}
func (NoopMetricsCollector) RecordUpdate(int, time.Duration) {}
func (NoopMetricsCollector) RecordNorms(int, time.Duration)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GramCount        atomic.Int64
	GramInners       atomic.Int64
	GramTotalNanos   atomic.Int64
	UpdateCount      atomic.Int64
	UpdateElements   atomic.Int64
	UpdateTotalNanos atomic.Int64
	NormsCount       atomic.Int64
	NormsElements    atomic.Int64
	NormsTotalNanos  atomic.Int64
}

// RecordGram implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGram(inners int, duration time.Duration) {
	b.GramCount.Add(1)
	b.GramInners.Add(int64(inners))
	b.GramTotalNanos.Add(duration.Nanoseconds())
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(count int, duration time.Duration) {
	b.UpdateCount.Add(1)
	b.UpdateElements.Add(int64(count))
	b.UpdateTotalNanos.Add(duration.Nanoseconds())
}

// RecordNorms implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNorms(count int, duration time.Duration) {
	b.NormsCount.Add(1)
	b.NormsElements.Add(int64(count))
	b.NormsTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GramCount:      b.GramCount.Load(),
		GramInners:     b.GramInners.Load(),
		GramAvgNanos:   avgNanos(b.GramTotalNanos.Load(), b.GramCount.Load()),
		UpdateCount:    b.UpdateCount.Load(),
		UpdateElements: b.UpdateElements.Load(),
		UpdateAvgNanos: avgNanos(b.UpdateTotalNanos.Load(), b.UpdateCount.Load()),
		NormsCount:     b.NormsCount.Load(),
		NormsElements:  b.NormsElements.Load(),
		NormsAvgNanos:  avgNanos(b.NormsTotalNanos.Load(), b.NormsCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GramCount      int64
	GramInners     int64
	GramAvgNanos   int64
	UpdateCount    int64
	UpdateElements int64
	UpdateAvgNanos int64
	NormsCount     int64
	NormsElements  int64
	NormsAvgNanos  int64
}
