// Package snapshot builds the immutable page bundle the scoring engine
// analyzes: fetched HTML, the parsed tag tree, robots/sitemap data, and the
// tokenized visible text.
package snapshot

import (
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageSnapshot is the read-only input to all analyzers. It is created once
// per analysis run and never mutated afterwards.
type PageSnapshot struct {
	URL          string
	StatusCode   int
	Headers      http.Header
	HTML         string
	Doc          *goquery.Document
	FetchLatency time.Duration
	FetchedAt    time.Time

	RobotsTxt      string
	RobotsPresent  bool
	SitemapPresent bool

	VisibleText string
	Sentences   []string
	Words       []string
}
