package neodb

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    queryCounter   prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordQuery(filters, results int, duration time.Duration) {
//	    p.queryCounter.Inc()
//	    // ... record result counts, duration, etc.
//	}
type MetricsCollector interface {
	// RecordLink is called once after the catalog links approaches to
	// NEOs. unresolved is the number of approaches without a matching
	// designation, duration is the total linking time.
	RecordLink(objects, approaches, unresolved int, duration time.Duration)

	// RecordLookup is called after each designation or name lookup.
	// hit is true when the key was found.
	RecordLookup(hit bool)

	// RecordQuery is called after each query finishes or is abandoned.
	// filters is the number of filters applied, results is the number of
	// events yielded, duration is the time spent streaming.
	RecordQuery(filters, results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLink(int, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordLookup(bool)                       {}
func (NoopMetricsCollector) RecordQuery(int, int, time.Duration)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LinkCount       atomic.Int64
	LinkObjects     atomic.Int64
	LinkApproaches  atomic.Int64
	LinkUnresolved  atomic.Int64
	LinkTotalNanos  atomic.Int64
	LookupCount     atomic.Int64
	LookupMisses    atomic.Int64
	QueryCount      atomic.Int64
	QueryResults    atomic.Int64
	QueryTotalNanos atomic.Int64
}

// RecordLink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLink(objects, approaches, unresolved int, duration time.Duration) {
	b.LinkCount.Add(1)
	b.LinkObjects.Add(int64(objects))
	b.LinkApproaches.Add(int64(approaches))
	b.LinkUnresolved.Add(int64(unresolved))
	b.LinkTotalNanos.Add(duration.Nanoseconds())
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool) {
	b.LookupCount.Add(1)
	if !hit {
		b.LookupMisses.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(filters, results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LinkCount:      b.LinkCount.Load(),
		LinkObjects:    b.LinkObjects.Load(),
		LinkApproaches: b.LinkApproaches.Load(),
		LinkUnresolved: b.LinkUnresolved.Load(),
		LookupCount:    b.LookupCount.Load(),
		LookupMisses:   b.LookupMisses.Load(),
		QueryCount:     b.QueryCount.Load(),
		QueryResults:   b.QueryResults.Load(),
		QueryAvgNanos:  b.getAvgQueryNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LinkCount      int64
	LinkObjects    int64
	LinkApproaches int64
	LinkUnresolved int64
	LookupCount    int64
	LookupMisses   int64
	QueryCount     int64
	QueryResults   int64
	QueryAvgNanos  int64
}
