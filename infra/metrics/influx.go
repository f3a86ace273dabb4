package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/carboncompare/core/metrics"
	"github.com/kilianp07/carboncompare/core/model"
	"github.com/kilianp07/carboncompare/infra/logger"
)

// InfluxSink writes calculation events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails, so an unreachable sink never blocks
// calculations.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordCalculation writes one lifecycle result as a measurement point.
func (s *InfluxSink) RecordCalculation(res model.LifecycleResult, elapsed time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("lifecycle_calculation").
		AddTag("vehicle_type", res.VehicleType.String()).
		AddTag("greenwashing", strconv.FormatBool(res.GreenwashingFlag)).
		AddField("manufacturing_kg", res.Manufacturing).
		AddField("use_phase_kg", res.UsePhase).
		AddField("disposal_kg", res.Disposal).
		AddField("total_kg", res.Total).
		AddField("per_km_g", res.PerKm).
		AddField("duration_ms", float64(elapsed.Milliseconds())).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordComparison writes one comparison outcome as a measurement point.
func (s *InfluxSink) RecordComparison(res model.ComparisonResult, elapsed time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("vehicle_comparison").
		AddTag("recommended_vehicle", res.Recommendation.RecommendedVehicle.String()).
		AddField("vehicles", len(res.Results)).
		AddField("confidence_pct", res.Recommendation.ConfidencePercentage).
		AddField("savings_vs_worst_kg", res.Recommendation.SavingsVsWorstKg).
		AddField("duration_ms", float64(elapsed.Milliseconds())).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying InfluxDB client.
func (s *InfluxSink) Close() { s.client.Close() }
