// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package metrics provides Prometheus instrumentation for:
//   - Background research source performance and abandonment
//   - API endpoint latency and throughput
//   - Event discovery (Ticketmaster) calls
//   - Geocoding and TTS operations
//   - Circuit breaker states around external services
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Research Pipeline Metrics
	ResearchSourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "research_source_duration_seconds",
			Help:    "Duration of individual research source queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "category"},
	)

	ResearchSourceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_source_errors_total",
			Help: "Total number of research source query errors",
		},
		[]string{"source", "category"},
	)

	ResearchSourcesAbandoned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_sources_abandoned_total",
			Help: "Total number of sources still in flight when the research deadline expired",
		},
		[]string{"source"},
	)

	ResearchResultsKept = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_results_kept_total",
			Help: "Total number of research results kept after filtering",
		},
		[]string{"category"},
	)

	ResearchResultsFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_results_filtered_total",
			Help: "Total number of research results dropped during filtering",
		},
		[]string{"category", "reason"}, // reason: "short_content", "duplicate", "over_limit"
	)

	ResearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "research_pipeline_duration_seconds",
			Help:    "End-to-end background research duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 15, 20, 30, 45},
		},
	)

	// Event Discovery Metrics
	EventSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "event_search_duration_seconds",
			Help:    "Duration of Ticketmaster event searches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	EventSearchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_search_errors_total",
			Help: "Total number of Ticketmaster search errors",
		},
	)

	EventsRanked = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "events_ranked_count",
			Help:    "Number of events ranked per relevance pass",
			Buckets: []float64{0, 5, 10, 20, 50, 100, 200},
		},
	)

	// Geocoding Metrics
	GeocodingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geocoding_duration_seconds",
			Help:    "Duration of Nominatim geocoding calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"direction"}, // "forward", "reverse"
	)

	GeocodingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocoding_errors_total",
			Help: "Total number of geocoding errors",
		},
		[]string{"direction"},
	)

	// TTS Metrics
	TTSSynthesisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tts_synthesis_duration_seconds",
			Help:    "Duration of TTS synthesis in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	TTSFilesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tts_files_stored",
			Help: "Current number of synthesized audio files on disk",
		},
	)

	TTSFilesCleaned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tts_files_cleaned_total",
			Help: "Total number of expired audio files removed",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordSourceQuery records a single research source query.
func RecordSourceQuery(source, category string, duration time.Duration, err error) {
	ResearchSourceDuration.WithLabelValues(source, category).Observe(duration.Seconds())
	if err != nil {
		ResearchSourceErrors.WithLabelValues(source, category).Inc()
	}
}

// RecordSourceAbandoned records a source still in flight at the deadline.
func RecordSourceAbandoned(source string) {
	ResearchSourcesAbandoned.WithLabelValues(source).Inc()
}

// RecordResultsFiltered records results dropped during filtering.
func RecordResultsFiltered(category, reason string, count int) {
	if count > 0 {
		ResearchResultsFiltered.WithLabelValues(category, reason).Add(float64(count))
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEventSearch records a Ticketmaster search call.
func RecordEventSearch(duration time.Duration, err error) {
	EventSearchDuration.Observe(duration.Seconds())
	if err != nil {
		EventSearchErrors.Inc()
	}
}

// RecordGeocoding records a Nominatim call.
func RecordGeocoding(direction string, duration time.Duration, err error) {
	GeocodingDuration.WithLabelValues(direction).Observe(duration.Seconds())
	if err != nil {
		GeocodingErrors.WithLabelValues(direction).Inc()
	}
}
