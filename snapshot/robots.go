package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RobotsInfo carries the robots.txt content (if any) and whether a sitemap
// resource exists at the conventional location.
type RobotsInfo struct {
	RobotsTxt      string
	RobotsPresent  bool
	SitemapPresent bool
}

// RobotsRetriever fetches robots.txt and checks sitemap.xml existence for
// the host of a page URL. Absence or retrieval errors are not failures; the
// info simply records what could be found.
type RobotsRetriever struct {
	client *http.Client
}

// NewRobotsRetriever creates a retriever with a short timeout; robots and
// sitemap lookups should never dominate an analysis run.
func NewRobotsRetriever() *RobotsRetriever {
	return &RobotsRetriever{
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Retrieve looks up robots.txt and sitemap.xml for the given page URL.
func (r *RobotsRetriever) Retrieve(ctx context.Context, pageURL string) (RobotsInfo, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return RobotsInfo{}, fmt.Errorf("parsing url: %w", err)
	}
	base := parsed.Scheme + "://" + parsed.Host

	info := RobotsInfo{}
	if content, ok := r.get(ctx, base+"/robots.txt"); ok {
		info.RobotsTxt = content
		info.RobotsPresent = true
	}
	info.SitemapPresent = r.head(ctx, base+"/sitemap.xml")
	return info, nil
}

func (r *RobotsRetriever) get(ctx context.Context, target string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}
	return string(body), true
}

func (r *RobotsRetriever) head(ctx context.Context, target string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}
