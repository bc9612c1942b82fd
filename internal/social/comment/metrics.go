// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Aggregate cache outcomes.
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

var (
	aggregateLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modhub_comment_thread_aggregate_lookups_total",
		Help: "Thread like aggregate lookups by cache outcome",
	}, []string{"result"})

	conditionalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modhub_comment_conditional_requests_total",
		Help: "Comment listings by conditional GET outcome",
	}, []string{"outcome"})

	pipelineLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "modhub_comment_pipeline_seconds",
			Help:    "Time spent ranking, paginating and rendering one comment listing",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"orderby"},
	)

	likeChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modhub_comment_like_changes_total",
		Help: "Likes and unlikes that changed stored state",
	}, []string{"action"})
)
