package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/kilianp07/carboncompare/core/metrics"
	"github.com/kilianp07/carboncompare/core/model"
)

// PromSink records calculation events in Prometheus metrics.
type PromSink struct {
	calculations *prometheus.CounterVec
	calcDuration *prometheus.HistogramVec
	comparisons  *prometheus.CounterVec
	savings      prometheus.Histogram
}

// NewPromSink registers calculation metrics on the default Prometheus
// registerer. The Prometheus server is started separately.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lifecycle_calculations_total",
		Help: "Total number of lifecycle calculations",
	}, []string{"vehicle_type", "greenwashing"})
	calcDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lifecycle_calculation_seconds",
		Help:    "Time spent computing one lifecycle result",
		Buckets: prometheus.DefBuckets,
	}, []string{"vehicle_type"})
	comparisons := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vehicle_comparisons_total",
		Help: "Total number of comparison requests",
	}, []string{"recommended_vehicle"})
	savings := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "comparison_savings_kg",
		Help:    "CO2-eq savings of the recommended vehicle versus the worst option",
		Buckets: prometheus.ExponentialBuckets(100, 2, 10),
	})

	if err := reg.Register(calculations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			calculations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(calcDuration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			calcDuration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(comparisons); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			comparisons = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(savings); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			savings = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		calculations: calculations,
		calcDuration: calcDuration,
		comparisons:  comparisons,
		savings:      savings,
	}, nil
}

// RecordCalculation increments the calculation counter and observes the
// computation duration.
func (s *PromSink) RecordCalculation(res model.LifecycleResult, elapsed time.Duration) error {
	s.calculations.WithLabelValues(res.VehicleType.String(), strconv.FormatBool(res.GreenwashingFlag)).Inc()
	s.calcDuration.WithLabelValues(res.VehicleType.String()).Observe(elapsed.Seconds())
	return nil
}

// RecordComparison increments the comparison counter and observes the
// savings of the recommended vehicle.
func (s *PromSink) RecordComparison(res model.ComparisonResult, _ time.Duration) error {
	s.comparisons.WithLabelValues(res.Recommendation.RecommendedVehicle.String()).Inc()
	s.savings.Observe(res.Recommendation.SavingsVsWorstKg)
	return nil
}

// StartPromServer serves the Prometheus scrape endpoint until the context
// is cancelled.
func StartPromServer(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: ":" + port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
