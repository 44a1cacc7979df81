// Package server exposes the application's Prometheus instruments over HTTP.
// The endpoint is optional (enabled with --metrics-addr) and intended for
// scraping during long comparison runs.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/metrics"
)

// Timeouts applied to the metrics listener. The endpoint serves only
// trusted scrapers, but slow-client limits are cheap to keep.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownGrace     = 5 * time.Second
)

// MetricsServer serves the /metrics endpoint for a Recorder's registry.
type MetricsServer struct {
	srv    *http.Server
	logger logging.Logger
}

// Handler returns the HTTP handler exposing the recorder's registry in
// Prometheus exposition format. Exported separately so tests can exercise
// the endpoint without a listener.
func Handler(recorder *metrics.Recorder) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(recorder.Registry(), promhttp.HandlerOpts{}))
	return mux
}

// New creates a MetricsServer listening on addr.
func New(addr string, recorder *metrics.Recorder, logger logging.Logger) *MetricsServer {
	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           Handler(recorder),
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// Start begins serving in a background goroutine. Listener failures are
// logged, not fatal: metrics are an auxiliary concern and must not take
// down a calculation.
func (s *MetricsServer) Start() {
	s.logger.Info("metrics endpoint listening", logging.String("addr", s.srv.Addr))
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics endpoint failed", err)
		}
	}()
}

// Shutdown stops the listener, waiting up to shutdownGrace for in-flight
// scrapes.
func (s *MetricsServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("metrics endpoint shutdown failed", err)
	}
}
