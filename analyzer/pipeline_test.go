package analyzer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosearch/backend/snapshot"
)

const pipelineFixture = `<html>
<head>
	<title>A Reasonably Descriptive Page Title Here</title>
	<meta name="description" content="This description sits comfortably inside the recommended length band for search snippets.">
</head>
<body>
	<header>site</header>
	<main>
		<h1>Main Topic</h1>
		<h2>Details</h2>
		<p>The dog sat under the tree. The cat slept in the sun.</p>
		<a href="/about">about</a>
		<a href="https://other.example.org/">elsewhere</a>
	</main>
	<footer>end</footer>
</body>
</html>`

func pipelineSnapshot(t *testing.T) *snapshot.PageSnapshot {
	t.Helper()
	snap := snapshotFromHTML(t, pipelineFixture)
	snap.FetchedAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	snap.FetchLatency = 800 * time.Millisecond
	snap.VisibleText = "The dog sat under the tree. The cat slept in the sun."
	snap.Sentences = []string{"The dog sat under the tree.", "The cat slept in the sun."}
	snap.Words = []string{"the", "dog", "sat", "under", "the", "tree", "the", "cat", "slept", "in", "the", "sun"}
	return snap
}

func TestPipelineRun(t *testing.T) {
	p, err := NewPipeline(DefaultScoringConfig())
	require.NoError(t, err)

	report, err := p.Run(pipelineSnapshot(t))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/page", report.URL)
	assert.Greater(t, report.CompositeScore, 0.0)
	assert.LessOrEqual(t, report.CompositeScore, 100.0)

	require.Len(t, report.Categories, 4)
	wantOrder := []string{CategorySEO, CategoryHeuristics, CategoryCrawlability, CategoryTextReadability}
	weightSum := 0.0
	for i, cat := range report.Categories {
		assert.Equal(t, wantOrder[i], cat.Name)
		assert.Equal(t, StatusComputed, cat.Status)
		weightSum += cat.Weight
	}
	assert.InDelta(t, 1.0, weightSum, 1e-9)
}

func TestPipelinePartialFailure(t *testing.T) {
	p, err := NewPipeline(DefaultScoringConfig())
	require.NoError(t, err)

	// No extracted text: readability becomes unavailable, the other three
	// categories still compute and absorb its weight.
	snap := snapshotFromHTML(t, pipelineFixture)
	report, err := p.Run(snap)
	require.NoError(t, err)

	byName := make(map[string]CategoryResult, len(report.Categories))
	for _, cat := range report.Categories {
		byName[cat.Name] = cat
	}

	readability := byName[CategoryTextReadability]
	assert.Equal(t, StatusUnavailable, readability.Status)
	assert.Contains(t, readability.Reason, "insufficient text")
	assert.Equal(t, 0.0, readability.Weight)

	for _, name := range []string{CategorySEO, CategoryHeuristics, CategoryCrawlability} {
		cat := byName[name]
		assert.Equal(t, StatusComputed, cat.Status, "category %s", name)
		assert.InDelta(t, 0.33, cat.Weight, 0.01, "category %s", name)
	}
	assert.Greater(t, report.CompositeScore, 0.0)
}

func TestPipelineDeterministic(t *testing.T) {
	p, err := NewPipeline(DefaultScoringConfig())
	require.NoError(t, err)

	snap := pipelineSnapshot(t)

	first, err := p.Run(snap)
	require.NoError(t, err)
	second, err := p.Run(snap)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "re-running the pipeline on the same snapshot must yield an identical report")
}
