package churchdir

import (
	"context"
	"strings"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single request and returns the page body.
	// Non-success statuses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ImageFetcher retrieves raw image bytes for embedding.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// NormalizeURL trims raw and prepends "http://" when it carries no
// http or https scheme. An empty input is an EINVALID error.
func NormalizeURL(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", Errorf(EINVALID, "URL required")
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	return u, nil
}
