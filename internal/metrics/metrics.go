// Package metrics holds the Prometheus collectors of the service. Collectors
// register with the default registry at init and are served on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	AnalyticsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_computation_duration_seconds",
			Help:    "Duration of analytics computations including their scans",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

// RecordHTTPRequest records one served request. route is the router pattern,
// not the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackInFlight increments the in-flight gauge and returns its decrement.
func TrackInFlight() func() {
	HTTPInFlight.Inc()
	return HTTPInFlight.Dec
}

// TimeAnalytics starts timing an analytics operation. Call the returned
// function when it completes.
func TimeAnalytics(operation string) func() {
	start := time.Now()
	return func() {
		AnalyticsDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
