// Package metrics exposes the prometheus instrumentation for the generation
// engine. Collectors are registered on a private registry so tests can
// create handlers without double-registration panics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	GenerationsTotal   *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	RateLimited        *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmogen_generations_total",
			Help: "Completed generation calls by operation and classification.",
		}, []string{"operation", "classification"}),
		GenerationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmogen_generation_failures_total",
			Help: "Failed generation calls by operation and error type.",
		}, []string{"operation", "error_type"}),
		GenerationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cosmogen_generation_duration_seconds",
			Help:    "Wall-clock duration of generation calls by operation.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"operation"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "cosmogen_result_cache_hits_total",
			Help: "Generation results served from the redis cache.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "cosmogen_result_cache_misses_total",
			Help: "Generation results recomputed on a cache miss.",
		}),
		RateLimited: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmogen_rate_limited_total",
			Help: "Requests rejected by the rate limiter, by route class.",
		}, []string{"route_class"}),
	}
}

// Handler serves the scrape endpoint for this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
