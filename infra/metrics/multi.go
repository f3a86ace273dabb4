package metrics

import (
	"errors"
	"time"

	coremetrics "github.com/kilianp07/carboncompare/core/metrics"
	"github.com/kilianp07/carboncompare/core/model"
)

// MultiSink fans events out to several sinks, collecting every error.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordCalculation(res model.LifecycleResult, elapsed time.Duration) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordCalculation(res, elapsed); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordComparison(res model.ComparisonResult, elapsed time.Duration) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordComparison(res, elapsed); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
