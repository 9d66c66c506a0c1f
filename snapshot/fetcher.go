package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "GeoSearchBot/1.0"
)

// FetchResult holds the raw HTML and response metadata from one fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	Headers    http.Header
	HTML       string
	Latency    time.Duration
	FetchedAt  time.Time
}

// StatusError reports a fetch that completed over the network but returned a
// non-2xx status. Network failures surface as ordinary wrapped errors, so
// callers can tell the two apart.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

// Fetcher retrieves a single page over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with connection pooling and keep-alive
// connections enabled.
func NewFetcher() *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Fetcher{
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}
}

// Fetch retrieves the page and measures elapsed latency. A non-2xx response
// returns both the result and a StatusError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	latency := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	result := &FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
		HTML:       string(body),
		Latency:    latency,
		FetchedAt:  start.UTC(),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return result, nil
}
