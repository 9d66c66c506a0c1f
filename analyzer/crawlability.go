package analyzer

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/geosearch/backend/snapshot"
)

const (
	thinContentThreshold = 0.1
	slowLoadThreshold    = 3 * time.Second
)

// User agents of recognized AI crawlers, checked against robots.txt both for
// blocking (indexability) and presence (explicit directives).
var llmUserAgents = []string{
	"GPTBot",
	"ClaudeBot",
	"anthropic-ai",
	"Google-Extended",
	"CCBot",
	"PerplexityBot",
	"Amazonbot",
	"YouBot",
	"facebookexternalhit",
}

// CrawlabilityAnalyzer evaluates how reachable the page is for crawlers:
// robots directives, sitemap presence, text-to-HTML ratio, and load time.
// All checks are pure parsing and arithmetic over the snapshot.
type CrawlabilityAnalyzer struct{}

// Analyze computes the crawlability metrics for the snapshot.
func (a *CrawlabilityAnalyzer) Analyze(snap *snapshot.PageSnapshot) (Result, error) {
	if snap == nil || strings.TrimSpace(snap.HTML) == "" {
		return Result{}, MalformedInputError{Analyzer: "crawlability", Reason: "html is empty"}
	}

	res := Result{}

	indexable, blockedBy := a.checkIndexability(snap)
	res.Metrics = append(res.Metrics, BoolMetric(MetricIndexable, indexable))
	if !indexable {
		res.Findings = append(res.Findings, "page path disallowed by robots.txt for "+blockedBy)
	}

	res.Metrics = append(res.Metrics, BoolMetric(MetricSitemapPresent, snap.SitemapPresent))
	if !snap.SitemapPresent {
		res.Findings = append(res.Findings, "no sitemap.xml found")
	}

	ratio := textHTMLRatio(snap)
	res.Metrics = append(res.Metrics, RatioMetric(MetricTextHTMLRatio, ratio))
	if ratio < thinContentThreshold {
		res.Findings = append(res.Findings, fmt.Sprintf("thin content: text-to-HTML ratio %.2f below %.1f", ratio, thinContentThreshold))
	}

	res.Metrics = append(res.Metrics, DurationMetric(MetricLoadTime, snap.FetchLatency))
	if snap.FetchLatency > slowLoadThreshold {
		res.Findings = append(res.Findings, fmt.Sprintf("slow load time: %s exceeds %s", snap.FetchLatency.Round(time.Millisecond), slowLoadThreshold))
	}

	hasDirectives := llmDirectivesPresent(snap)
	res.Metrics = append(res.Metrics, BoolMetric(MetricLLMDirectivesPresent, hasDirectives))
	if snap.RobotsPresent && !hasDirectives {
		res.Findings = append(res.Findings, "robots.txt has no directives for AI crawlers")
	}

	return res, nil
}

// checkIndexability is true unless robots.txt disallows the page path for
// the default agent or any recognized AI crawler. A missing or unparsable
// robots.txt means the page is indexable.
func (a *CrawlabilityAnalyzer) checkIndexability(snap *snapshot.PageSnapshot) (bool, string) {
	if !snap.RobotsPresent {
		return true, ""
	}
	robots, err := robotstxt.FromString(snap.RobotsTxt)
	if err != nil {
		return true, ""
	}

	path := "/"
	if parsed, err := url.Parse(snap.URL); err == nil && parsed.Path != "" {
		path = parsed.Path
	}

	if !robots.TestAgent(path, "*") {
		return false, "the default user-agent"
	}
	for _, agent := range llmUserAgents {
		if !robots.TestAgent(path, agent) {
			return false, agent
		}
	}
	return true, ""
}

func textHTMLRatio(snap *snapshot.PageSnapshot) float64 {
	htmlLen := len(snap.HTML)
	if htmlLen == 0 {
		return 0
	}
	ratio := float64(len(snap.VisibleText)) / float64(htmlLen)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// llmDirectivesPresent reports whether robots.txt names any recognized AI
// crawler at all, allowed or blocked.
func llmDirectivesPresent(snap *snapshot.PageSnapshot) bool {
	if !snap.RobotsPresent {
		return false
	}
	lower := strings.ToLower(snap.RobotsTxt)
	for _, agent := range llmUserAgents {
		if strings.Contains(lower, strings.ToLower(agent)) {
			return true
		}
	}
	return false
}
