// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package metrics provides Prometheus instrumentation for the
// recommendation service: model load characteristics, lookup outcomes,
// neighbor query latency and API request metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcome label values.
const (
	OutcomeMatched  = "matched"
	OutcomeNotFound = "not_found"
)

var (
	// Model store metrics
	ModelLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_load_duration_seconds",
			Help: "Time spent loading the model artifacts at startup",
		},
	)

	ModelCatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	ModelDimension = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_feature_dimension",
			Help: "Feature dimension of the loaded term-frequency matrix",
		},
	)

	// Lookup metrics
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_lookups_total",
			Help: "Total recommendation lookups by outcome",
		},
		[]string{"outcome"},
	)

	MatchRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_match_ratio",
			Help:    "Similarity ratio of resolved fuzzy matches",
			Buckets: prometheus.LinearBuckets(0.3, 0.1, 8), // 0.3 cutoff up to 1.0
		},
	)

	KNNQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_knn_query_duration_seconds",
			Help:    "Duration of nearest-neighbor queries",
			Buckets: prometheus.DefBuckets,
		},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)
)

// RecordModelLoad records the load characteristics of the model store.
func RecordModelLoad(movies, dimension int, elapsed time.Duration) {
	ModelLoadDuration.Set(elapsed.Seconds())
	ModelCatalogSize.Set(float64(movies))
	ModelDimension.Set(float64(dimension))
}

// RecordLookup records a completed lookup and, for matches, the ratio
// the matcher accepted.
func RecordLookup(outcome string, ratio float64) {
	LookupsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeMatched {
		MatchRatio.Observe(ratio)
	}
}

// RecordKNNQuery records the latency of one neighbor query.
func RecordKNNQuery(elapsed time.Duration) {
	KNNQueryDuration.Observe(elapsed.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAPIRequest records method/path/status counters and latency for
// one HTTP request.
func RecordAPIRequest(method, path, status string, elapsed time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
