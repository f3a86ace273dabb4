package metrics

import (
	"testing"
	"time"

	"github.com/kilianp07/carboncompare/core/model"
)

type recordSink struct {
	count int
}

func (r *recordSink) RecordCalculation(model.LifecycleResult, time.Duration) error {
	r.count++
	return nil
}

func (r *recordSink) RecordComparison(model.ComparisonResult, time.Duration) error {
	r.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordCalculation(model.LifecycleResult{}, 0); err != nil {
		t.Fatalf("record calculation: %v", err)
	}
	if err := m.RecordComparison(model.ComparisonResult{}, 0); err != nil {
		t.Fatalf("record comparison: %v", err)
	}
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("events not forwarded")
	}
}
