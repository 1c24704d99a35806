package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the fake weather server
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Application Metrics
	WeatherLookupsTotal *prometheus.CounterVec
	WeatherErrorsTotal  prometheus.Counter
	PreflightsTotal     prometheus.Counter
	NotFoundTotal       prometheus.Counter
}

// New creates all Prometheus metrics and registers them with reg
// Passing nil registers on the default registry (what /metrics serves)
// Tests pass prometheus.NewRegistry() so repeated calls don't collide
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(10, 10, 6),
			},
			[]string{"method", "endpoint", "status"},
		),

		// Application Metrics
		WeatherLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_lookups_total",
				Help: "Total number of weather lookups by city source",
			},
			[]string{"source"}, // "query" or "default"
		),

		WeatherErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "weather_lookup_errors_total",
				Help: "Total number of weather lookups that failed in the store",
			},
		),

		PreflightsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "cors_preflights_total",
				Help: "Total number of answered CORS preflight requests",
			},
		),

		NotFoundTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "http_not_found_total",
				Help: "Total number of requests for unknown paths",
			},
		),
	}
}
