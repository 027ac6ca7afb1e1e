// Package metrics exposes Prometheus collectors for model training,
// recommendation requests and the result cache.
//
// Collectors register on the default registry; the runner only serves them
// when metrics.address is configured.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecommendationsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	// TrainingRunsTotal counts training attempts by result.
	TrainingRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_training_runs_total",
			Help: "Total number of similarity model training runs",
		},
		[]string{"result"},
	)

	// TrainingDuration tracks how long a full training run takes.
	TrainingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommender_training_duration_seconds",
			Help:    "Duration of similarity model training in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// VocabularySize reports the term count of the active model.
	VocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_vocabulary_size",
			Help: "Number of TF-IDF terms in the active model",
		},
	)

	// RecommendationsTotal counts recommendation requests by outcome and source.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"outcome", "source"},
	)

	// CacheLookupsTotal counts result cache lookups by result (hit, miss, error).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_cache_lookups_total",
			Help: "Total number of recommendation cache lookups",
		},
		[]string{"result"},
	)
)

// RecordTraining records one training run.
func RecordTraining(success bool, duration time.Duration, vocabulary int) {
	result := "success"
	if !success {
		result = "failure"
	}
	TrainingRunsTotal.WithLabelValues(result).Inc()
	TrainingDuration.Observe(duration.Seconds())
	if success {
		VocabularySize.Set(float64(vocabulary))
	}
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(outcome, source string) {
	RecommendationsTotal.WithLabelValues(outcome, source).Inc()
}

// RecordCacheLookup records a cache hit, miss or error.
func RecordCacheLookup(result string) {
	CacheLookupsTotal.WithLabelValues(result).Inc()
}
