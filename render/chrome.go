package render

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromeRenderer fetches pages through headless Chrome, returning the
// DOM after script execution. Used for sources whose listings are
// populated client-side.
type ChromeRenderer struct {
	Headless bool
	Timeout  time.Duration
}

// NewChromeRenderer creates a headless ChromeRenderer with the default
// timeout.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{
		Headless: true,
		Timeout:  DefaultTimeout,
	}
}

// Render navigates to url in a fresh browser context and returns the
// serialized document.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", r.Headless),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(taskCtx, r.Timeout)
		defer cancel()
	}

	var html string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}
	return html, nil
}
