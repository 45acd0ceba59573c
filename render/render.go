// Package render provides the page-fetching seam used by the scraping
// and contact-mining stages: a Renderer turns a URL into the final
// HTML of the page. The default implementation is a plain HTTP client;
// a chromedp-backed implementation is available for sources that only
// populate their listings with JavaScript.
package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UserAgent is sent with every fetch. Listing sites block obvious bot
// agents, so this mirrors a desktop browser.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultTimeout bounds a single page fetch when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 30 * time.Second

// Renderer fetches the rendered HTML for a URL. Implementations may
// fail on navigation or timeout; callers treat any error as "this
// page is unavailable" and move on.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// HTTPRenderer fetches pages with a plain HTTP client. It sees only
// the HTML as served, without script execution.
type HTTPRenderer struct {
	Client *http.Client
}

// NewHTTPRenderer creates an HTTPRenderer with the default timeout.
func NewHTTPRenderer() *HTTPRenderer {
	return &HTTPRenderer{
		Client: &http.Client{Timeout: DefaultTimeout},
	}
}

// Render fetches the page at url and returns its body.
func (r *HTTPRenderer) Render(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
