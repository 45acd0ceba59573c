package contacts

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contactKeywords mark anchor text that likely leads to a page naming
// people.
var contactKeywords = []string{
	"contact", "about", "team", "organizer", "committee", "staff", "speaker",
}

// WellKnownPaths are conventional contact-page locations tried after
// the links actually present on the homepage.
var WellKnownPaths = []string{
	"/contact", "/contacts", "/contact-us", "/about", "/about-us",
	"/team", "/organizers", "/committee", "/staff", "/speakers",
}

// CandidatePages proposes an ordered, deduplicated list of same-host
// pages to mine when the homepage yields no contacts. In-page anchors
// whose text contains a contact keyword come first, since they reflect
// the site's actual structure; the well-known paths are appended only
// if not already present.
func CandidatePages(html, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse homepage HTML: %w", err)
	}

	seen := make(map[string]bool)
	var pages []string

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}

		text := strings.ToLower(cleanText(link.Text()))
		if !containsAny(text, contactKeywords) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host {
			return
		}

		page := resolved.String()
		if !seen[page] {
			seen[page] = true
			pages = append(pages, page)
		}
	})

	root := url.URL{Scheme: base.Scheme, Host: base.Host}
	for _, path := range WellKnownPaths {
		page := root.String() + path
		if !seen[page] {
			seen[page] = true
			pages = append(pages, page)
		}
	}

	return pages, nil
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
