package listing

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts article listing requests.
	// Labels: status (HTTP status code)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_listing_requests_total",
			Help: "Total number of article listing requests",
		},
		[]string{"status"},
	)

	// DurationSeconds tracks listing request duration distribution.
	// Labels: operation (handler, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "article_listing_duration_seconds",
			Help:    "Listing request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// ErrorsTotal counts listing errors by type.
	// Labels: type (validation, store)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_listing_errors_total",
			Help: "Total number of article listing errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a listing request metric.
func RecordRequest(statusCode int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// RecordError records an error metric.
// errorType should be one of: "validation", "store"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
