// Package metrics provides the application's observability instruments:
// Prometheus counters and histograms for calculations and verifications,
// and a runtime memory snapshot collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns the Prometheus instruments and their registry. Using a
// dedicated registry (instead of the global default) keeps tests isolated
// and lets the /metrics endpoint expose exactly the application's series.
type Recorder struct {
	registry *prometheus.Registry

	calculations  *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	verifications *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all instruments registered.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.calculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fibbench_calculations_total",
		Help: "Number of Fibonacci calculations, by strategy and outcome.",
	}, []string{"strategy", "status"})

	r.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "fibbench_calculation_duration_seconds",
		Help: "Calculation wall-clock duration, by strategy.",
		// The recursive strategy spans microseconds to minutes depending
		// on n, so the buckets cover seven orders of magnitude.
		Buckets: prometheus.ExponentialBuckets(1e-5, 10, 8),
	}, []string{"strategy"})

	r.verifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fibbench_verifications_total",
		Help: "Number of reference-sequence verifications, by strategy and result.",
	}, []string{"strategy", "result"})

	r.registry.MustRegister(r.calculations, r.duration, r.verifications)
	return r
}

// Registry returns the registry holding the Recorder's instruments.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveCalculation records one finished calculation.
func (r *Recorder) ObserveCalculation(strategy string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.calculations.WithLabelValues(strategy, status).Inc()
	r.duration.WithLabelValues(strategy).Observe(d.Seconds())
}

// ObserveVerification records one verification outcome.
func (r *Recorder) ObserveVerification(strategy string, passed bool) {
	result := "pass"
	if !passed {
		result = "fail"
	}
	r.verifications.WithLabelValues(strategy, result).Inc()
}
