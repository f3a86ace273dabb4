// Package app wires configuration, logging, metrics and the calculation
// engine into a runnable HTTP service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kilianp07/carboncompare/api"
	"github.com/kilianp07/carboncompare/config"
	"github.com/kilianp07/carboncompare/core/engine"
	"github.com/kilianp07/carboncompare/core/factors"
	coremetrics "github.com/kilianp07/carboncompare/core/metrics"
	"github.com/kilianp07/carboncompare/infra/logger"
	"github.com/kilianp07/carboncompare/infra/metrics"
)

// Service hosts the calculation API.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	server *http.Server
	closer func()
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var src factors.Source = factors.NewDefaultSource()
	if cfg.Factors.File != "" {
		loaded, err := factors.LoadOverrides(cfg.Factors.File)
		if err != nil {
			return nil, fmt.Errorf("factor table: %w", err)
		}
		src = loaded
		logg.Infof("emission factor overrides loaded from %s", cfg.Factors.File)
	}

	var sinks []coremetrics.Sink
	closer := func() {}
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			closer = is.Close
		}
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	eng := engine.New(src)
	router := api.NewRouter(eng, sink, logg, api.Options{
		Mode:        cfg.Server.Mode,
		CORSOrigins: cfg.Server.CORSOrigins,
		LogRequests: cfg.Logging.Requests,
	})

	return &Service{
		cfg: cfg,
		log: logg,
		server: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		closer: closer,
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil && err != http.ErrServerClosed {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.server.Addr)
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		timeout := time.Duration(s.cfg.Server.ShutdownTimeoutSeconds) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.closer()
	return nil
}
