package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	predictionsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hoopsight_predictions_total",
		Help: "Total number of predictions served, by outcome",
	}, []string{"outcome"})

	predictionsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hoopsight_predictions_failed_total",
		Help: "Total number of failed prediction requests, by reason",
	}, []string{"reason"})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hoopsight_prediction_duration_seconds",
		Help:    "Duration of the full prediction pipeline",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hoopsight_prediction_cache_hits_total",
		Help: "Total number of prediction cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hoopsight_prediction_cache_misses_total",
		Help: "Total number of prediction cache misses",
	})
)
