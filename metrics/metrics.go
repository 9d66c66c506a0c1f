// Package metrics bundles Prometheus collectors for the analysis service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all collectors on a dedicated registry.
type Metrics struct {
	Registry            *prometheus.Registry
	AnalysesTotal       *prometheus.CounterVec
	AnalysisDuration    prometheus.Histogram
	CacheHitsTotal      prometheus.Counter
	CategoryUnavailable *prometheus.CounterVec
}

// New constructs and registers all metrics on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	analyses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geosearch_analyses_total",
			Help: "Total page analyses by outcome.",
		},
		[]string{"outcome"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geosearch_analysis_duration_seconds",
			Help:    "End-to-end duration of one page analysis.",
			Buckets: prometheus.DefBuckets,
		},
	)
	cacheHits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "geosearch_cache_hits_total",
			Help: "Analyses served from the report cache.",
		},
	)
	categoryUnavailable := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geosearch_category_unavailable_total",
			Help: "Analyzer failures by category.",
		},
		[]string{"category"},
	)

	registry.MustRegister(analyses, duration, cacheHits, categoryUnavailable)

	return &Metrics{
		Registry:            registry,
		AnalysesTotal:       analyses,
		AnalysisDuration:    duration,
		CacheHitsTotal:      cacheHits,
		CategoryUnavailable: categoryUnavailable,
	}
}

// IncAnalysis increments the analyses counter for an outcome label.
func (m *Metrics) IncAnalysis(outcome string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(outcome).Inc()
}

// ObserveDuration records one analysis duration.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.AnalysisDuration.Observe(d.Seconds())
}

// IncCacheHit increments the cache hit counter.
func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

// IncCategoryUnavailable increments the failure counter for a category.
func (m *Metrics) IncCategoryUnavailable(category string) {
	if m == nil {
		return
	}
	m.CategoryUnavailable.WithLabelValues(category).Inc()
}
