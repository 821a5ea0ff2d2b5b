// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

// Package metrics provides Prometheus instrumentation for the trust
// scoring engine.
//
// Collectors are registered with the default registry via promauto;
// embedding applications expose them through their own /metrics endpoint.
//
// Available metrics:
//   - trust_score_requests_total: scoring requests (counter)
//   - trust_score_errors_total: failed requests (counter), label: error_type
//   - trust_score_duration_seconds: scoring latency (histogram)
//   - trust_score_value: distribution of final scores (histogram)
//   - trust_neighborhood_cache_hits_total / _misses_total: evaluator
//     neighborhood cache effectiveness (counters)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScoreRequests counts trust score computations.
	ScoreRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trust_score_requests_total",
			Help: "Total number of trust score requests",
		},
	)

	// ScoreErrors counts rejected or failed score requests.
	ScoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trust_score_errors_total",
			Help: "Total number of failed trust score requests",
		},
		[]string{"error_type"}, // "invalid_input", "canceled"
	)

	// ScoreDuration observes scoring latency.
	ScoreDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trust_score_duration_seconds",
			Help:    "Duration of trust score computations in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	// ScoreValue observes the distribution of final scores on the 0-10 scale.
	ScoreValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trust_score_value",
			Help:    "Distribution of computed trust scores",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)

	// NeighborhoodCacheHits counts evaluator neighborhoods served from cache.
	NeighborhoodCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trust_neighborhood_cache_hits_total",
			Help: "Total number of evaluator neighborhood cache hits",
		},
	)

	// NeighborhoodCacheMisses counts neighborhoods computed from scratch.
	NeighborhoodCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trust_neighborhood_cache_misses_total",
			Help: "Total number of evaluator neighborhood cache misses",
		},
	)
)
