package metrics

import (
	"time"
)

// UpdateArticlesTotal updates the total count of articles in the store.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// RecordArticleCreated records a successful article creation.
func RecordArticleCreated(category string) {
	ArticlesCreatedTotal.WithLabelValues(category).Inc()
}

// RecordArticlesSeeded records the number of sample articles inserted by seeding.
func RecordArticlesSeeded(count int) {
	if count > 0 {
		ArticlesSeededTotal.Add(float64(count))
	}
}

// RecordStoreQuery records the duration of a document store operation.
// Operation should describe the call (e.g., "list", "get", "insert", "count").
func RecordStoreQuery(operation string, duration time.Duration) {
	StoreQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStoreError records a failed document store operation.
func RecordStoreError(operation string) {
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}
