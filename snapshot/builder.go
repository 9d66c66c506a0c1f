package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/geosearch/backend/tokenizer"
)

// Builder assembles a PageSnapshot from its collaborators: the fetcher, the
// HTML parser, the robots/sitemap retriever, and the tokenizer.
type Builder struct {
	fetcher *Fetcher
	robots  *RobotsRetriever
}

// NewBuilder creates a Builder with default collaborators.
func NewBuilder() *Builder {
	return &Builder{
		fetcher: NewFetcher(),
		robots:  NewRobotsRetriever(),
	}
}

// Build fetches and parses the page at pageURL into an immutable snapshot.
// Only successfully fetched pages (2xx) produce a snapshot.
func (b *Builder) Build(ctx context.Context, pageURL string) (*PageSnapshot, error) {
	fetched, err := b.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fetched.HTML))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	info, err := b.robots.Retrieve(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	text := extractVisibleText(fetched.HTML, pageURL, doc)

	return &PageSnapshot{
		URL:            pageURL,
		StatusCode:     fetched.StatusCode,
		Headers:        fetched.Headers,
		HTML:           fetched.HTML,
		Doc:            doc,
		FetchLatency:   fetched.Latency,
		FetchedAt:      fetched.FetchedAt,
		RobotsTxt:      info.RobotsTxt,
		RobotsPresent:  info.RobotsPresent,
		SitemapPresent: info.SitemapPresent,
		VisibleText:    text,
		Sentences:      tokenizer.Sentences(text),
		Words:          tokenizer.Words(text),
	}, nil
}

// extractVisibleText prefers the readability extraction, which strips
// navigation and boilerplate; pages it cannot handle fall back to the body
// text of the tag tree.
func extractVisibleText(html, pageURL string, doc *goquery.Document) string {
	if parsed, err := url.Parse(pageURL); err == nil {
		article, err := readability.FromReader(strings.NewReader(html), parsed)
		if err == nil && strings.TrimSpace(article.TextContent) != "" {
			return normalizeWhitespace(article.TextContent)
		}
	}
	return normalizeWhitespace(doc.Find("body").Text())
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
