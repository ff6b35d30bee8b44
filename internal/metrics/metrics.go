// Package metrics provides Prometheus instrumentation for the scheduling
// service.
package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metric instances for the scheduling service.
// A nil *Registry is valid and records nothing, so instrumented code does
// not have to care whether metrics are enabled.
type Registry struct {
	SimulationsTotal   *prometheus.CounterVec
	SimulationDuration *prometheus.HistogramVec
	ProcessesScheduled *prometheus.CounterVec
	SimulationErrors   *prometheus.CounterVec

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewRegistry creates a metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		SimulationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schedsim",
				Subsystem: "scheduler",
				Name:      "simulations_total",
				Help:      "Total number of completed simulations",
			},
			[]string{"algorithm"},
		),

		SimulationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "schedsim",
				Subsystem: "scheduler",
				Name:      "simulation_duration_seconds",
				Help:      "Wall-clock time spent running simulations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),

		ProcessesScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schedsim",
				Subsystem: "scheduler",
				Name:      "processes_scheduled_total",
				Help:      "Total number of processes run to completion",
			},
			[]string{"algorithm"},
		),

		SimulationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schedsim",
				Subsystem: "scheduler",
				Name:      "errors_total",
				Help:      "Total number of simulations that failed",
			},
			[]string{"algorithm"},
		),

		CacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "schedsim",
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Total number of result cache hits",
			},
		),

		CacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "schedsim",
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Total number of result cache misses",
			},
		),
	}
}

// ObserveSimulation records one completed simulation.
func (r *Registry) ObserveSimulation(algorithm string, processes int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.SimulationsTotal.WithLabelValues(algorithm).Inc()
	r.ProcessesScheduled.WithLabelValues(algorithm).Add(float64(processes))
	r.SimulationDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// ObserveError records one failed simulation.
func (r *Registry) ObserveError(algorithm string) {
	if r == nil {
		return
	}
	r.SimulationErrors.WithLabelValues(algorithm).Inc()
}

// CacheHit records a result cache hit.
func (r *Registry) CacheHit() {
	if r == nil {
		return
	}
	r.CacheHits.Inc()
}

// CacheMiss records a result cache miss.
func (r *Registry) CacheMiss() {
	if r == nil {
		return
	}
	r.CacheMisses.Inc()
}

// Serve exposes the gatherer on addr at /metrics. It blocks until the
// listener fails, so callers normally run it in its own goroutine.
func Serve(addr string, g prometheus.Gatherer, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	logger.Info("metrics listener started", "addr", addr)
	return http.ListenAndServe(addr, mux)
}
