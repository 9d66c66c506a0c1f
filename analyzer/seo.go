package analyzer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/geosearch/backend/snapshot"
)

// Description lengths outside this band get flagged.
const (
	metaDescriptionMin = 50
	metaDescriptionMax = 160
)

// StructuralSEOAnalyzer inventories the on-page SEO structure: title and
// meta description, heading counts, internal/external links, image alt
// text, and inline script/style usage.
type StructuralSEOAnalyzer struct{}

// Analyze walks the tag tree and returns one raw metric per check. It is a
// pure function of the snapshot and performs no network calls.
func (a *StructuralSEOAnalyzer) Analyze(snap *snapshot.PageSnapshot) (Result, error) {
	if snap == nil || snap.Doc == nil {
		return Result{}, MalformedInputError{Analyzer: "structural-seo", Reason: "tag tree is absent"}
	}
	doc := snap.Doc
	if doc.Find("*").Length() == 0 {
		return Result{}, MalformedInputError{Analyzer: "structural-seo", Reason: "tag tree is empty"}
	}

	res := Result{}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	res.Metrics = append(res.Metrics, BoolMetric(MetricTitlePresent, title != ""))
	res.Metrics = append(res.Metrics, CountMetric(MetricTitleLength, len(title)))
	if title == "" {
		res.Findings = append(res.Findings, "missing title tag")
	}

	description, _ := doc.Find("meta[name='description']").Attr("content")
	description = strings.TrimSpace(description)
	res.Metrics = append(res.Metrics, CountMetric(MetricMetaDescriptionLength, len(description)))
	switch {
	case description == "":
		res.Findings = append(res.Findings, "missing meta description")
	case len(description) < metaDescriptionMin:
		res.Findings = append(res.Findings, fmt.Sprintf("meta description too short (%d chars, want at least %d)", len(description), metaDescriptionMin))
	case len(description) > metaDescriptionMax:
		res.Findings = append(res.Findings, fmt.Sprintf("meta description too long (%d chars, want at most %d)", len(description), metaDescriptionMax))
	}

	h1Count := doc.Find("h1").Length()
	res.Metrics = append(res.Metrics, CountMetric(MetricH1Count, h1Count))
	switch {
	case h1Count == 0:
		res.Findings = append(res.Findings, "no H1 heading found")
	case h1Count > 1:
		res.Findings = append(res.Findings, fmt.Sprintf("multiple H1 headings found (%d)", h1Count))
	}

	internal, external := countLinks(doc, snap.URL)
	res.Metrics = append(res.Metrics, CountMetric(MetricInternalLinks, internal))
	res.Metrics = append(res.Metrics, CountMetric(MetricExternalLinks, external))

	missingAlt := 0
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if alt, exists := s.Attr("alt"); !exists || strings.TrimSpace(alt) == "" {
			missingAlt++
		}
	})
	res.Metrics = append(res.Metrics, CountMetric(MetricImagesMissingAlt, missingAlt))
	if missingAlt > 0 {
		res.Findings = append(res.Findings, fmt.Sprintf("%d image(s) missing alt text", missingAlt))
	}

	inline := 0
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if _, exists := s.Attr("src"); !exists {
			inline++
		}
	})
	inline += doc.Find("style").Length()
	res.Metrics = append(res.Metrics, CountMetric(MetricInlineAssets, inline))
	if inline > 0 {
		res.Findings = append(res.Findings, fmt.Sprintf("%d inline script/style block(s)", inline))
	}

	return res, nil
}

// countLinks categorizes anchor hrefs against the page's host. Fragment-only
// anchors are skipped; relative hrefs count as internal.
func countLinks(doc *goquery.Document, baseURL string) (internal, external int) {
	var baseHost string
	if parsed, err := url.Parse(baseURL); err == nil {
		baseHost = parsed.Host
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || href == "#" || strings.HasPrefix(href, "#") {
			return
		}
		if strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
			return
		}

		parsed, err := url.Parse(href)
		if err != nil {
			return
		}
		if parsed.Host == "" || parsed.Host == baseHost {
			internal++
		} else {
			external++
		}
	})
	return internal, external
}
