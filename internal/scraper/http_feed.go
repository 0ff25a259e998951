package scraper

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

// HTTPFeed downloads a feed document over HTTP.
type HTTPFeed struct {
	url    string
	source string
	client *resty.Client
}

// NewHTTPFeed uses the URL host as the feed source name.
func NewHTTPFeed(feedURL string, timeout time.Duration) (*HTTPFeed, error) {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid feed url %q", feedURL)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPFeed{url: feedURL, source: u.Host, client: client}, nil
}

func (f *HTTPFeed) Source() string { return f.source }

func (f *HTTPFeed) Fetch(ctx context.Context) ([]models.Internship, error) {
	resp, err := f.client.R().SetContext(ctx).Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode())
	}
	return ParsePostings(f.source, resp.Body())
}
