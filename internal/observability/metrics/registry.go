// Package metrics provides centralized Prometheus metrics for the application.
// HTTP-level metrics live next to their middleware; this package holds the
// business and store-level collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track application-specific operations
var (
	// ArticlesTotal tracks total number of articles in the document store
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the document store",
		},
	)

	// ArticlesCreatedTotal counts articles created through the API
	ArticlesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
		[]string{"category"},
	)

	// ArticlesSeededTotal counts articles inserted by the seeding endpoint
	ArticlesSeededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_seeded_total",
			Help: "Total number of sample articles inserted by seeding",
		},
	)
)

// Store metrics track document store performance
var (
	// StoreQueryDuration measures document store operation duration
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// StoreErrorsTotal counts document store operation failures
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of document store operation failures",
		},
		[]string{"operation"},
	)
)
