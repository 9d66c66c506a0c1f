package analyzer

import (
	"fmt"
	"math"
	"time"
)

const weightTolerance = 1e-6

// MetricWeight pairs one metric with its weight inside a category. The
// slice order fixes the metric order in the report, keeping re-analysis of
// the same snapshot byte-identical.
type MetricWeight struct {
	Metric string  `json:"metric"`
	Weight float64 `json:"weight"`
}

// CategorySpec defines one category: its member metrics with weights and
// its weight in the composite score.
type CategorySpec struct {
	Name    string         `json:"name"`
	Weight  float64        `json:"weight"`
	Metrics []MetricWeight `json:"metrics"`
}

// ScoringConfig is the full scoring configuration: normalization curves plus
// category and metric weights. The numeric defaults are configuration, not
// constants baked into the analyzers.
type ScoringConfig struct {
	Categories []CategorySpec   `json:"categories"`
	Curves     map[string]Curve `json:"curves"`
}

// DefaultScoringConfig returns the default weights (equal 0.25 per
// category) and curves.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Categories: []CategorySpec{
			{
				Name:   CategorySEO,
				Weight: 0.25,
				Metrics: []MetricWeight{
					{Metric: MetricTitlePresent, Weight: 0.15},
					{Metric: MetricTitleLength, Weight: 0.15},
					{Metric: MetricMetaDescriptionLength, Weight: 0.20},
					{Metric: MetricH1Count, Weight: 0.15},
					{Metric: MetricInternalLinks, Weight: 0.10},
					{Metric: MetricExternalLinks, Weight: 0.05},
					{Metric: MetricImagesMissingAlt, Weight: 0.10},
					{Metric: MetricInlineAssets, Weight: 0.10},
				},
			},
			{
				Name:   CategoryHeuristics,
				Weight: 0.25,
				Metrics: []MetricWeight{
					{Metric: MetricSemanticRatio, Weight: 0.40},
					{Metric: MetricValidityIssues, Weight: 0.30},
					{Metric: MetricHeadingOrderViolations, Weight: 0.30},
				},
			},
			{
				Name:   CategoryCrawlability,
				Weight: 0.25,
				Metrics: []MetricWeight{
					{Metric: MetricIndexable, Weight: 0.30},
					{Metric: MetricSitemapPresent, Weight: 0.15},
					{Metric: MetricTextHTMLRatio, Weight: 0.20},
					{Metric: MetricLoadTime, Weight: 0.20},
					{Metric: MetricLLMDirectivesPresent, Weight: 0.15},
				},
			},
			{
				Name:   CategoryTextReadability,
				Weight: 0.25,
				Metrics: []MetricWeight{
					{Metric: MetricFleschReadingEase, Weight: 0.50},
					{Metric: MetricAvgSentenceLength, Weight: 0.25},
					{Metric: MetricLexicalComplexity, Weight: 0.25},
				},
			},
		},
		Curves: map[string]Curve{
			MetricTitlePresent:           {Kind: CurveBoolean},
			MetricTitleLength:            {Kind: CurveRange, OptimalMin: 30, OptimalMax: 60, ZeroMin: 0, ZeroMax: 120},
			MetricMetaDescriptionLength:  {Kind: CurveRange, OptimalMin: 50, OptimalMax: 160, ZeroMin: 0, ZeroMax: 320},
			MetricH1Count:                {Kind: CurveRange, OptimalMin: 1, OptimalMax: 1, ZeroMin: 0, ZeroMax: 6},
			MetricInternalLinks:          {Kind: CurveRange, OptimalMin: 5, OptimalMax: 20, ZeroMin: 0, ZeroMax: 100},
			MetricExternalLinks:          {Kind: CurveRange, OptimalMin: 2, OptimalMax: 10, ZeroMin: 0, ZeroMax: 50},
			MetricImagesMissingAlt:       {Kind: CurvePenalty, PerOccurrence: 10},
			MetricInlineAssets:           {Kind: CurvePenalty, PerOccurrence: 5},
			MetricSemanticRatio:          {Kind: CurveRange, OptimalMin: 0.5, OptimalMax: 1, ZeroMin: 0, ZeroMax: 1},
			MetricValidityIssues:         {Kind: CurvePenalty, PerOccurrence: 10},
			MetricHeadingOrderViolations: {Kind: CurvePenalty, PerOccurrence: 20},
			MetricIndexable:              {Kind: CurveBoolean},
			MetricSitemapPresent:         {Kind: CurveBoolean},
			MetricTextHTMLRatio:          {Kind: CurveRange, OptimalMin: 0.25, OptimalMax: 0.7, ZeroMin: 0, ZeroMax: 1},
			MetricLoadTime:               {Kind: CurveDuration, FastMs: 1000, SlowMs: 3000},
			MetricLLMDirectivesPresent:   {Kind: CurveBoolean},
			MetricFleschReadingEase:      {Kind: CurveClamp},
			MetricAvgSentenceLength:      {Kind: CurveRange, OptimalMin: 1, OptimalMax: 14, ZeroMin: 0, ZeroMax: 40},
			MetricLexicalComplexity:      {Kind: CurveRange, OptimalMin: 0, OptimalMax: 0.15, ZeroMin: 0, ZeroMax: 0.5},
		},
	}
}

// Validate checks that category weights and every category's metric weights
// each sum to 1 within tolerance, and that every weighted metric has a
// normalization curve.
func (c ScoringConfig) Validate() error {
	if len(c.Categories) == 0 {
		return ConfigurationError{Reason: "no categories configured"}
	}

	categorySum := 0.0
	for _, cat := range c.Categories {
		categorySum += cat.Weight

		metricSum := 0.0
		for _, mw := range cat.Metrics {
			metricSum += mw.Weight
			if _, ok := c.Curves[mw.Metric]; !ok {
				return ConfigurationError{Reason: fmt.Sprintf("metric %q in category %q has no normalization curve", mw.Metric, cat.Name)}
			}
		}
		if math.Abs(metricSum-1) > weightTolerance {
			return ConfigurationError{Reason: fmt.Sprintf("metric weights in category %q sum to %g, want 1", cat.Name, metricSum)}
		}
	}
	if math.Abs(categorySum-1) > weightTolerance {
		return ConfigurationError{Reason: fmt.Sprintf("category weights sum to %g, want 1", categorySum)}
	}
	return nil
}

// categoryInput is one category's analyzer outcome handed to the
// aggregator: either a result or the error that made it unavailable.
type categoryInput struct {
	name    string
	result  Result
	failure error
}

// Aggregator combines normalized sub-scores into category scores and the
// composite. Deterministic, pure, no I/O.
type Aggregator struct {
	cfg        ScoringConfig
	normalizer *Normalizer
}

// NewAggregator validates the configuration before anything runs.
func NewAggregator(cfg ScoringConfig) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	normalizer, err := NewNormalizer(cfg.Curves)
	if err != nil {
		return nil, err
	}
	return &Aggregator{cfg: cfg, normalizer: normalizer}, nil
}

// Aggregate builds the final report from the per-category analyzer
// outcomes. Unavailable categories keep their status and reason; their
// weight is redistributed over the available ones rather than scored as
// zero.
func (ag *Aggregator) Aggregate(url string, fetchedAt time.Time, inputs map[string]categoryInput) (*Report, error) {
	report := &Report{URL: url, FetchedAt: fetchedAt}

	availableWeight := 0.0
	for _, spec := range ag.cfg.Categories {
		if in, ok := inputs[spec.Name]; ok && in.failure == nil {
			availableWeight += spec.Weight
		}
	}

	composite := 0.0
	for _, spec := range ag.cfg.Categories {
		in, ok := inputs[spec.Name]
		if !ok || in.failure != nil {
			reason := "analyzer did not run"
			if ok {
				reason = in.failure.Error()
			}
			cat := CategoryResult{
				Name:     spec.Name,
				Status:   StatusUnavailable,
				Reason:   reason,
				Weight:   0,
				Findings: []string{fmt.Sprintf("category %s unavailable: %s", spec.Name, reason)},
			}
			report.Categories = append(report.Categories, cat)
			report.Findings = append(report.Findings, cat.Findings...)
			continue
		}

		cat, err := ag.scoreCategory(spec, in.result)
		if err != nil {
			return nil, err
		}
		if availableWeight > 0 {
			cat.Weight = round2(spec.Weight / availableWeight)
			composite += cat.Score * (spec.Weight / availableWeight)
		}
		report.Categories = append(report.Categories, cat)
		report.Findings = append(report.Findings, cat.Findings...)
	}

	report.CompositeScore = round2(composite)
	if report.Findings == nil {
		report.Findings = []string{}
	}
	return report, nil
}

// scoreCategory normalizes the category's metrics in configured order and
// applies the metric weights. Metrics an analyzer emitted beyond the weight
// table are carried in the report for traceability but do not score.
func (ag *Aggregator) scoreCategory(spec CategorySpec, res Result) (CategoryResult, error) {
	byName := make(map[string]RawMetric, len(res.Metrics))
	for _, m := range res.Metrics {
		byName[m.Name] = m
	}

	cat := CategoryResult{
		Name:     spec.Name,
		Status:   StatusComputed,
		Metrics:  res.Metrics,
		Findings: res.Findings,
	}

	score := 0.0
	for _, mw := range spec.Metrics {
		raw, ok := byName[mw.Metric]
		if !ok {
			return CategoryResult{}, ConfigurationError{Reason: fmt.Sprintf("category %q expects metric %q, analyzer did not produce it", spec.Name, mw.Metric)}
		}
		normalized, err := ag.normalizer.Normalize(raw)
		if err != nil {
			return CategoryResult{}, err
		}
		normalized.Score = round2(normalized.Score)
		cat.Scores = append(cat.Scores, normalized)
		score += normalized.Score * mw.Weight
	}
	cat.Score = round2(score)
	return cat, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
