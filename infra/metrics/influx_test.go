package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	coremetrics "github.com/kilianp07/carboncompare/core/metrics"
	"github.com/kilianp07/carboncompare/core/model"
)

func TestInfluxSink_RecordCalculation(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	res := model.LifecycleResult{
		VehicleType:   model.VehicleBEV,
		Manufacturing: 17900,
		UsePhase:      6291,
		Disposal:      1400,
		Total:         25591,
		PerKm:         170.6,
	}
	if err := sink.RecordCalculation(res, 2*time.Millisecond); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if !strings.Contains(body, "lifecycle_calculation") {
		t.Fatalf("measurement missing in body: %s", body)
	}
	if !strings.Contains(body, "vehicle_type=BEV") {
		t.Fatalf("vehicle tag missing in body: %s", body)
	}
	if !strings.Contains(body, "total_kg=25591") {
		t.Fatalf("total field missing in body: %s", body)
	}
}

func TestInfluxSink_RecordComparison(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	cmp := model.ComparisonResult{
		Results: []model.LifecycleResult{{}, {}},
		Recommendation: model.RecommendationResult{
			RecommendedVehicle: model.VehicleBEV,
			SavingsVsWorstKg:   11969,
		},
	}
	if err := sink.RecordComparison(cmp, time.Millisecond); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if !strings.Contains(body, "vehicle_comparison") {
		t.Fatalf("measurement missing in body: %s", body)
	}
	if !strings.Contains(body, "recommended_vehicle=BEV") {
		t.Fatalf("recommendation tag missing in body: %s", body)
	}
}

func TestInfluxSinkFallbackToNop(t *testing.T) {
	// No server listening: the health check fails and a NopSink is
	// returned instead of a broken sink.
	sink := NewInfluxSinkWithFallback("http://127.0.0.1:1", "token", "org", "bucket")
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink fallback, got %T", sink)
	}
}
