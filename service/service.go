// Package service orchestrates snapshot building and the scoring pipeline,
// with an LRU report cache and operational counters on top.
package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/geosearch/backend/analyzer"
	"github.com/geosearch/backend/metrics"
	"github.com/geosearch/backend/snapshot"
	"github.com/geosearch/backend/stats"
)

// Service runs page analyses end to end.
type Service struct {
	builder  *snapshot.Builder
	pipeline *analyzer.Pipeline
	cache    *lru.Cache[string, *analyzer.Report]
	stats    *stats.Storage
	metrics  *metrics.Metrics
	log      *logrus.Logger
}

// New wires the service. Scoring configuration problems surface here as
// ConfigurationError, before the server starts accepting requests.
func New(cfg analyzer.ScoringConfig, cacheSize int, st *stats.Storage, m *metrics.Metrics, log *logrus.Logger) (*Service, error) {
	pipeline, err := analyzer.NewPipeline(cfg)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New[string, *analyzer.Report](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{
		builder:  snapshot.NewBuilder(),
		pipeline: pipeline,
		cache:    cache,
		stats:    st,
		metrics:  m,
		log:      log,
	}, nil
}

// cacheKey creates a unique key for the URL.
func cacheKey(url string) string {
	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}

// Analyze fetches the page and runs the full scoring pipeline, serving
// repeated URLs from the cache.
func (s *Service) Analyze(ctx context.Context, url string) (*analyzer.Report, error) {
	key := cacheKey(url)
	if report, ok := s.cache.Get(key); ok {
		s.metrics.IncCacheHit()
		s.stats.RecordAnalysis(true, 0)
		s.log.WithField("url", url).Debug("serving analysis from cache")
		return report, nil
	}

	start := time.Now()
	snap, err := s.builder.Build(ctx, url)
	if err != nil {
		s.metrics.IncAnalysis("fetch_error")
		s.stats.RecordFetchFailure()
		return nil, err
	}

	report, err := s.pipeline.Run(snap)
	if err != nil {
		s.metrics.IncAnalysis("error")
		return nil, err
	}
	s.metrics.ObserveDuration(time.Since(start))
	s.metrics.IncAnalysis("ok")

	failures := 0
	for _, cat := range report.Categories {
		if cat.Status == analyzer.StatusUnavailable {
			failures++
			s.metrics.IncCategoryUnavailable(cat.Name)
			s.log.WithFields(logrus.Fields{
				"url":      url,
				"category": cat.Name,
				"reason":   cat.Reason,
			}).Warn("category unavailable")
		}
	}
	s.stats.RecordAnalysis(false, failures)

	s.cache.Add(key, report)
	s.log.WithFields(logrus.Fields{
		"url":       url,
		"composite": report.CompositeScore,
		"elapsed":   time.Since(start).Round(time.Millisecond).String(),
	}).Info("analysis complete")

	return report, nil
}

// IsCached reports whether a URL has a cached report.
func (s *Service) IsCached(url string) bool {
	return s.cache.Contains(cacheKey(url))
}

// ClearCache drops all cached reports.
func (s *Service) ClearCache() {
	s.cache.Purge()
}
