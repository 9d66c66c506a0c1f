package analyzer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/geosearch/backend/snapshot"
)

// Tags treated as semantic structure, weighed against generic <div> usage.
var semanticTags = []string{"header", "nav", "main", "article", "section", "footer"}

// Container tags whose open/close imbalance counts as a validity issue.
var balancedTags = []string{"div", "span", "p", "ul", "ol", "li", "table", "section", "article", "a"}

// StructuralHeuristicAnalyzer runs the rule-based "AI readability" checks:
// semantic element usage, basic HTML validity, and heading-order
// correctness. No network or AI service is involved.
type StructuralHeuristicAnalyzer struct{}

// Analyze computes the semantic ratio, a validity issue count, and the
// heading-order violation count.
func (a *StructuralHeuristicAnalyzer) Analyze(snap *snapshot.PageSnapshot) (Result, error) {
	if snap == nil || snap.Doc == nil {
		return Result{}, MalformedInputError{Analyzer: "structural-heuristic", Reason: "tag tree is absent"}
	}
	if strings.TrimSpace(snap.HTML) == "" {
		return Result{}, MalformedInputError{Analyzer: "structural-heuristic", Reason: "html is empty"}
	}

	res := Result{}

	semanticCount := 0
	for _, tag := range semanticTags {
		semanticCount += snap.Doc.Find(tag).Length()
	}
	divCount := snap.Doc.Find("div").Length()
	total := semanticCount + divCount
	ratio := 0.0
	if total > 0 {
		ratio = float64(semanticCount) / float64(total)
	}
	res.Metrics = append(res.Metrics, RatioMetric(MetricSemanticRatio, ratio))
	if ratio < 0.5 {
		res.Findings = append(res.Findings, fmt.Sprintf("low semantic element usage (%.0f%% of structural tags)", ratio*100))
	}

	issues := countValidityIssues(snap)
	res.Metrics = append(res.Metrics, CountMetric(MetricValidityIssues, issues))
	if issues > 0 {
		res.Findings = append(res.Findings, fmt.Sprintf("%d HTML validity issue(s) detected", issues))
	}

	violations, offenders := headingOrderViolations(snap.Doc)
	res.Metrics = append(res.Metrics, CountMetric(MetricHeadingOrderViolations, violations))
	for _, text := range offenders {
		res.Findings = append(res.Findings, "heading level skipped at: "+text)
	}

	return res, nil
}

// countValidityIssues approximates a validator: open/close imbalances for
// common container tags plus duplicate id attributes. It is a count, not a
// full validation.
func countValidityIssues(snap *snapshot.PageSnapshot) int {
	lower := strings.ToLower(snap.HTML)
	issues := 0
	for _, tag := range balancedTags {
		open := strings.Count(lower, "<"+tag+">") + strings.Count(lower, "<"+tag+" ")
		closed := strings.Count(lower, "</"+tag+">")
		if open > closed {
			issues += open - closed
		}
	}

	seen := make(map[string]int)
	snap.Doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if id != "" {
			seen[id]++
		}
	})
	for _, n := range seen {
		if n > 1 {
			issues += n - 1
		}
	}
	return issues
}

// headingOrderViolations walks headings in document order. The current
// level starts at 0; each heading may go at most one level deeper than the
// current one, while moving to the same or a shallower level is always
// allowed. The current level always updates to the heading just seen, so a
// single skip is counted once.
func headingOrderViolations(doc *goquery.Document) (int, []string) {
	violations := 0
	var offenders []string
	currentLevel := 0

	doc.Find("h1,h2,h3,h4,h5,h6").Each(func(_ int, s *goquery.Selection) {
		level := int(goquery.NodeName(s)[1] - '0')
		if level > currentLevel+1 {
			violations++
			offenders = append(offenders, strings.TrimSpace(s.Text()))
		}
		currentLevel = level
	})
	return violations, offenders
}
