// Package scrape turns rendered listing pages into candidate
// Conference records. All HTML sources share one control flow,
// parameterized by a per-source selector table; sources differ only in
// their selectors and search URL shape.
package scrape

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/confdate"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/filter"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/render"
)

// Criteria carries the search filters applied to every candidate
// listing.
type Criteria struct {
	Keywords []string
	Location string
	Start    time.Time
	End      *time.Time
}

// SelectorConfig defines how to extract listing fields from one DOM
// node. Listing selects the per-conference nodes; the remaining
// selectors are evaluated within each node. Link defaults to Title
// when empty. OfficialSite and DetailDescription apply to the
// conference's own detail page, not the listing.
type SelectorConfig struct {
	Listing           string
	Title             string
	Dates             string
	Location          string
	Description       string
	Link              string
	OfficialSite      string
	DetailDescription string
}

// Source is one listing-site adapter: a name, a base URL for resolving
// relative links, a selector table, and a search URL builder.
type Source struct {
	Name      string
	BaseURL   string
	Selectors SelectorConfig
	SearchURL func(keywords []string) string
	Logger    *log.Logger
}

// ListCandidates extracts candidate conferences from a rendered
// listing page, applying the date, location, and keyword filters. One
// bad listing never fails the page: listings with unparsable dates or
// missing links are logged and skipped.
func (s *Source) ListCandidates(html, baseURL string, criteria Criteria) ([]*conference.Conference, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	var confs []*conference.Conference
	doc.Find(s.Selectors.Listing).Each(func(_ int, node *goquery.Selection) {
		title := findText(node, s.Selectors.Title)
		if title == "" {
			title = "Unknown Conference"
		}

		dateText := findText(node, s.Selectors.Dates)
		dates, err := confdate.Parse(dateText, criteria.Start.Year())
		if err != nil {
			s.logf("%s: skipping %q: %v", s.Name, title, err)
			return
		}
		if !filter.InDateRange(dates.Start, criteria.Start, criteria.End) {
			return
		}

		location := findText(node, s.Selectors.Location)
		if location == "" {
			location = "Unknown Location"
		}
		if !filter.InLocation(location, criteria.Location) {
			return
		}

		linkSelector := s.Selectors.Link
		if linkSelector == "" {
			linkSelector = s.Selectors.Title
		}
		href, _ := node.Find(linkSelector).First().Attr("href")
		website := absoluteURL(baseURL, href)
		if website == "" {
			s.logf("%s: skipping %q: no resolvable website link", s.Name, title)
			return
		}

		description := findText(node, s.Selectors.Description)
		if !filter.Relevant(title, description, criteria.Keywords) {
			return
		}

		conf := conference.New(title, dates.Start, dates.End, location, website, description)
		conf.Source = s.Name
		confs = append(confs, conf)
	})

	return confs, nil
}

// RefineFromDetail applies best-effort refinements from a conference's
// rendered detail page: a more specific official-site link, and a
// description when the listing had none. Failures leave the already
// accepted conference untouched.
func (s *Source) RefineFromDetail(conf *conference.Conference, html string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		s.logf("%s: failed to parse detail page for %q: %v", s.Name, conf.Title, err)
		return
	}

	if s.Selectors.DetailDescription != "" && conf.Description == "" {
		if text := cleanText(doc.Find(s.Selectors.DetailDescription).First().Text()); text != "" {
			conf.Description = text
		}
	}

	if s.Selectors.OfficialSite != "" {
		if href, ok := doc.Find(s.Selectors.OfficialSite).First().Attr("href"); ok {
			if official := absoluteURL(conf.WebsiteURL, href); official != "" {
				conf.WebsiteURL = official
			}
		}
	}
}

// Discover renders the source's search page, lists candidates, and
// visits each accepted conference's detail page for refinement. pause,
// when non-nil, is called between successive fetches.
func (s *Source) Discover(ctx context.Context, r render.Renderer, criteria Criteria, pause func(context.Context)) ([]*conference.Conference, error) {
	html, err := r.Render(ctx, s.SearchURL(criteria.Keywords))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s listing: %w", s.Name, err)
	}

	confs, err := s.ListCandidates(html, s.BaseURL, criteria)
	if err != nil {
		return nil, err
	}

	for _, conf := range confs {
		if pause != nil {
			pause(ctx)
		}
		detail, err := r.Render(ctx, conf.WebsiteURL)
		if err != nil {
			s.logf("%s: detail fetch failed for %q (%s): %v", s.Name, conf.Title, conf.WebsiteURL, err)
			continue
		}
		s.RefineFromDetail(conf, detail)
	}

	return confs, nil
}

func (s *Source) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// cleanText collapses runs of whitespace into single spaces.
func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// findText returns the cleaned text of the first element matching
// selector within node. An empty selector matches nothing.
func findText(node *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return cleanText(node.Find(selector).First().Text())
}

// absoluteURL resolves href against base and returns it only if the
// result is an absolute http(s) URL.
func absoluteURL(base, href string) string {
	if href == "" {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := baseURL.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" || resolved.Host == "" {
		return ""
	}
	return resolved.String()
}
