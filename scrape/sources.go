package scrape

import (
	"log"
	"strings"
)

// Builtin returns the built-in listing-site adapters keyed by source
// name. The three sites share the extraction control flow and differ
// only in selectors and search URL shape.
func Builtin(logger *log.Logger) map[string]*Source {
	return map[string]*Source{
		"conferenceindex": {
			Name:    "conferenceindex",
			BaseURL: "https://conferenceindex.org",
			Selectors: SelectorConfig{
				Listing:      ".conference-item",
				Title:        ".conference-title a",
				Dates:        ".conference-dates",
				Location:     ".conference-location",
				Description:  ".conference-description",
				OfficialSite: "a[href*='http']:not([href*='conferenceindex.org'])",
			},
			SearchURL: func(keywords []string) string {
				return "https://conferenceindex.org/conferences/europe?keywords=" + joinKeywords(keywords)
			},
			Logger: logger,
		},
		"10times": {
			Name:    "10times",
			BaseURL: "https://10times.com",
			Selectors: SelectorConfig{
				Listing:      ".event-list-item",
				Title:        ".event-name a",
				Dates:        ".event-dates",
				Location:     ".event-location",
				Description:  ".event-description",
				OfficialSite: "a.website-link",
			},
			SearchURL: func(keywords []string) string {
				return "https://10times.com/events?kw=" + joinKeywords(keywords) + "&ci=europe"
			},
			Logger: logger,
		},
		"eventbrite": {
			Name:    "eventbrite",
			BaseURL: "https://www.eventbrite.com",
			Selectors: SelectorConfig{
				Listing:           ".search-event-card-wrapper",
				Title:             ".event-card__title",
				Dates:             ".event-card__date",
				Location:          ".event-card__location",
				Link:              "a.event-card-link",
				OfficialSite:      "a[href*='http']:not([href*='eventbrite.com'])",
				DetailDescription: ".event-details__description",
			},
			SearchURL: func(keywords []string) string {
				return "https://www.eventbrite.com/d/europe/conferences/?q=" + joinKeywords(keywords)
			},
			Logger: logger,
		},
	}
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, "+")
}
