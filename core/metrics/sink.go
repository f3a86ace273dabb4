// Package metrics defines the sink interface for recording calculation
// events. Implementations (Prometheus, InfluxDB, multi-sink composition)
// live in infra/metrics.
package metrics

import (
	"time"

	"github.com/kilianp07/carboncompare/core/model"
)

// Sink records engine activity. Implementations must be safe for
// concurrent use; the transport layer calls them from request handlers.
type Sink interface {
	RecordCalculation(res model.LifecycleResult, elapsed time.Duration) error
	RecordComparison(res model.ComparisonResult, elapsed time.Duration) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordCalculation(model.LifecycleResult, time.Duration) error { return nil }
func (NopSink) RecordComparison(model.ComparisonResult, time.Duration) error { return nil }
