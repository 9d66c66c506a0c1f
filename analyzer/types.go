package analyzer

import "time"

// MetricKind tags the unit of a RawMetric so normalization stays exhaustive.
type MetricKind string

const (
	KindCount    MetricKind = "count"
	KindRatio    MetricKind = "ratio"
	KindBoolean  MetricKind = "boolean"
	KindDuration MetricKind = "duration"
	KindOrdinal  MetricKind = "ordinal"
)

// Category names, in report order.
const (
	CategorySEO             = "seo"
	CategoryHeuristics      = "heuristics"
	CategoryCrawlability    = "crawlability"
	CategoryTextReadability = "text_readability"
)

// Metric names produced by the analyzers. Each name is produced by exactly
// one analyzer and has exactly one normalization curve.
const (
	MetricTitlePresent           = "seo.title_present"
	MetricTitleLength            = "seo.title_length"
	MetricMetaDescriptionLength  = "seo.meta_description_length"
	MetricH1Count                = "seo.h1_count"
	MetricInternalLinks          = "seo.internal_links"
	MetricExternalLinks          = "seo.external_links"
	MetricImagesMissingAlt       = "seo.images_missing_alt"
	MetricInlineAssets           = "seo.inline_assets"
	MetricSemanticRatio          = "heuristics.semantic_ratio"
	MetricValidityIssues         = "heuristics.validity_issues"
	MetricHeadingOrderViolations = "heuristics.heading_order_violations"
	MetricIndexable              = "crawlability.indexable"
	MetricSitemapPresent         = "crawlability.sitemap_present"
	MetricTextHTMLRatio          = "crawlability.text_html_ratio"
	MetricLoadTime               = "crawlability.load_time"
	MetricLLMDirectivesPresent   = "crawlability.llm_directives_present"
	MetricFleschReadingEase      = "readability.flesch_reading_ease"
	MetricAvgSentenceLength      = "readability.avg_sentence_length"
	MetricLexicalComplexity      = "readability.lexical_complexity"
)

// RawMetric is a single named measurement. Booleans are carried as 0/1 and
// durations in milliseconds so the normalizer works on one numeric value.
type RawMetric struct {
	Name  string     `json:"name"`
	Kind  MetricKind `json:"kind"`
	Value float64    `json:"value"`
}

// BoolMetric builds a boolean RawMetric.
func BoolMetric(name string, v bool) RawMetric {
	value := 0.0
	if v {
		value = 1.0
	}
	return RawMetric{Name: name, Kind: KindBoolean, Value: value}
}

// CountMetric builds a count RawMetric.
func CountMetric(name string, n int) RawMetric {
	return RawMetric{Name: name, Kind: KindCount, Value: float64(n)}
}

// RatioMetric builds a ratio RawMetric.
func RatioMetric(name string, v float64) RawMetric {
	return RawMetric{Name: name, Kind: KindRatio, Value: v}
}

// DurationMetric builds a duration RawMetric, stored in milliseconds.
func DurationMetric(name string, d time.Duration) RawMetric {
	return RawMetric{Name: name, Kind: KindDuration, Value: float64(d.Milliseconds())}
}

// OrdinalMetric builds an ordinal RawMetric (e.g. a formula output).
func OrdinalMetric(name string, v float64) RawMetric {
	return RawMetric{Name: name, Kind: KindOrdinal, Value: v}
}

// NormalizedScore is a RawMetric mapped onto [0,100] plus the rule that
// produced the mapping.
type NormalizedScore struct {
	Metric string  `json:"metric"`
	Score  float64 `json:"score"`
	Rule   string  `json:"rule"`
}

// Result is what one analyzer returns: its raw metrics plus any advisory
// findings it noticed along the way.
type Result struct {
	Metrics  []RawMetric `json:"metrics"`
	Findings []string    `json:"findings"`
}

// Category status values.
const (
	StatusComputed    = "computed"
	StatusUnavailable = "unavailable"
)

// CategoryResult holds one category's score, its member metrics and
// sub-scores, and whether the category could be computed at all.
type CategoryResult struct {
	Name     string            `json:"name"`
	Status   string            `json:"status"`
	Reason   string            `json:"reason,omitempty"`
	Score    float64           `json:"score"`
	Weight   float64           `json:"weight"`
	Metrics  []RawMetric       `json:"metrics,omitempty"`
	Scores   []NormalizedScore `json:"scores,omitempty"`
	Findings []string          `json:"findings,omitempty"`
}

// Report is the terminal artifact of one pipeline run. It carries no
// generated-at timestamp of its own so that re-analyzing the same snapshot
// produces an identical report; FetchedAt comes from the snapshot.
type Report struct {
	URL            string           `json:"url"`
	FetchedAt      time.Time        `json:"fetchedAt"`
	CompositeScore float64          `json:"compositeScore"`
	Categories     []CategoryResult `json:"categories"`
	Findings       []string         `json:"findings"`
}
