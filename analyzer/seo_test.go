package analyzer

import (
	"errors"
	"testing"
)

const seoFixture = `<html>
<head>
	<title>A Reasonably Descriptive Page Title Here</title>
	<meta name="description" content="This description sits comfortably inside the recommended length band for search snippets.">
</head>
<body>
	<h1>Main Topic</h1>
	<p>Some content with <a href="/about">an internal link</a> and
	<a href="https://other.example.org/">an external one</a>.</p>
	<a href="#">fragment</a>
	<img src="a.png" alt="described">
	<img src="b.png">
	<img src="c.png" alt="">
	<script src="app.js"></script>
	<script>var inline = true;</script>
	<style>.x{}</style>
</body>
</html>`

func TestStructuralSEOAnalyzer(t *testing.T) {
	snap := snapshotFromHTML(t, seoFixture)

	res, err := (&StructuralSEOAnalyzer{}).Analyze(snap)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	metrics := metricsByName(res.Metrics)

	tests := []struct {
		metric string
		want   float64
	}{
		{MetricTitlePresent, 1},
		{MetricTitleLength, 40},
		{MetricH1Count, 1},
		{MetricInternalLinks, 1},
		{MetricExternalLinks, 1},
		{MetricImagesMissingAlt, 2},
		{MetricInlineAssets, 2},
	}
	for _, tt := range tests {
		if got := metrics[tt.metric].Value; got != tt.want {
			t.Errorf("%s = %f, want %f", tt.metric, got, tt.want)
		}
	}

	if got := metrics[MetricMetaDescriptionLength].Value; got < 50 || got > 160 {
		t.Errorf("meta description length = %f, want inside [50,160]", got)
	}
	if hasFindingContaining(res.Findings, "missing meta description") {
		t.Errorf("unexpected missing-description finding: %v", res.Findings)
	}
	if !hasFindingContaining(res.Findings, "missing alt text") {
		t.Errorf("expected a missing-alt finding, got %v", res.Findings)
	}
}

func TestSEOMissingEssentials(t *testing.T) {
	snap := snapshotFromHTML(t, "<html><head></head><body><h1>a</h1><h1>b</h1></body></html>")

	res, err := (&StructuralSEOAnalyzer{}).Analyze(snap)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	metrics := metricsByName(res.Metrics)
	if metrics[MetricTitlePresent].Value != 0 {
		t.Error("expected title_present = 0")
	}
	if metrics[MetricH1Count].Value != 2 {
		t.Errorf("h1 count = %f, want 2", metrics[MetricH1Count].Value)
	}
	if !hasFindingContaining(res.Findings, "missing title") {
		t.Errorf("expected a missing-title finding, got %v", res.Findings)
	}
	if !hasFindingContaining(res.Findings, "multiple H1") {
		t.Errorf("expected a multiple-H1 finding, got %v", res.Findings)
	}
}

func TestSEOMalformedInput(t *testing.T) {
	_, err := (&StructuralSEOAnalyzer{}).Analyze(nil)
	var malformed MalformedInputError
	if !errors.As(err, &malformed) {
		t.Errorf("expected MalformedInputError, got %v", err)
	}
}
