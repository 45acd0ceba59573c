package scrape

import (
	"context"
	"fmt"
	"log"

	"github.com/mmcdole/gofeed"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/filter"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/render"
)

// FeedSource lists candidate conferences from an RSS or Atom feed that
// publishes one item per upcoming event, dated at the event start. The
// gofeed library handles both formats transparently. Items feed the
// same keyword, location, and date filters as the HTML adapters; the
// location check runs against the item's title and description since
// feeds carry no structured location field.
type FeedSource struct {
	Name   string
	URL    string
	Logger *log.Logger
}

// Discover fetches and parses the feed, returning the items that pass
// all filters as conferences.
func (f *FeedSource) Discover(ctx context.Context, r render.Renderer, criteria Criteria, pause func(context.Context)) ([]*conference.Conference, error) {
	body, err := r.Render(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s feed: %w", f.Name, err)
	}

	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s feed: %w", f.Name, err)
	}

	var confs []*conference.Conference
	for _, item := range feed.Items {
		title := cleanText(item.Title)
		if title == "" {
			title = "Unknown Conference"
		}

		if item.PublishedParsed == nil {
			f.logf("%s: skipping %q: no event date", f.Name, title)
			continue
		}
		start := item.PublishedParsed.UTC()
		if !filter.InDateRange(start, criteria.Start, criteria.End) {
			continue
		}

		description := cleanText(item.Description)
		if !filter.InLocation(title+" "+description, criteria.Location) {
			continue
		}

		website := absoluteURL(f.URL, item.Link)
		if website == "" {
			f.logf("%s: skipping %q: no resolvable event link", f.Name, title)
			continue
		}

		if !filter.Relevant(title, description, criteria.Keywords) {
			continue
		}

		conf := conference.New(title, start, nil, "Unknown Location", website, description)
		conf.Source = f.Name
		confs = append(confs, conf)
	}

	return confs, nil
}

func (f *FeedSource) logf(format string, args ...any) {
	if f.Logger != nil {
		f.Logger.Printf(format, args...)
	}
}
