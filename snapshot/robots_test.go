package snapshot

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
)

func TestRetrieveRobotsAndSitemap(t *testing.T) {
	r := NewRobotsRetriever()
	httpmock.ActivateNonDefault(r.client)
	defer httpmock.DeactivateAndReset()

	const robots = "User-agent: *\nDisallow: /private/\n"
	httpmock.RegisterResponder("GET", "https://example.com/robots.txt",
		httpmock.NewStringResponder(200, robots))
	httpmock.RegisterResponder("HEAD", "https://example.com/sitemap.xml",
		httpmock.NewStringResponder(200, ""))

	info, err := r.Retrieve(context.Background(), "https://example.com/some/deep/page")
	if err != nil {
		t.Fatalf("Retrieve returned error: %v", err)
	}
	if !info.RobotsPresent || info.RobotsTxt != robots {
		t.Errorf("robots info = %+v, want present with fixture content", info)
	}
	if !info.SitemapPresent {
		t.Error("expected sitemap to be detected")
	}
}

func TestRetrieveNothingFound(t *testing.T) {
	r := NewRobotsRetriever()
	httpmock.ActivateNonDefault(r.client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://example.com/robots.txt",
		httpmock.NewStringResponder(404, ""))
	httpmock.RegisterResponder("HEAD", "https://example.com/sitemap.xml",
		httpmock.NewStringResponder(404, ""))

	info, err := r.Retrieve(context.Background(), "https://example.com/")
	if err != nil {
		t.Fatalf("Retrieve returned error: %v", err)
	}
	if info.RobotsPresent || info.SitemapPresent {
		t.Errorf("info = %+v, want nothing present", info)
	}
}

func TestRetrieveBadURL(t *testing.T) {
	r := NewRobotsRetriever()
	if _, err := r.Retrieve(context.Background(), "://not-a-url"); err == nil {
		t.Error("expected an error for an unparseable url")
	}
}
