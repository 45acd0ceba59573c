// Package filter holds the relevance predicates applied to candidate
// conferences: keyword matching, date-window checks, and location
// matching.
package filter

import (
	"strings"
	"time"
)

// Relevant reports whether any keyword is a case-insensitive substring
// of the concatenated title and description. Keywords are OR-combined;
// an empty keyword list matches nothing.
func Relevant(title, description string, keywords []string) bool {
	text := strings.ToLower(title + " " + description)
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// InDateRange reports whether d falls within [start, end], inclusive
// on both bounds, compared at day granularity. A nil end leaves the
// window open-ended.
func InDateRange(d, start time.Time, end *time.Time) bool {
	day := truncateToDay(d)
	if day.Before(truncateToDay(start)) {
		return false
	}
	if end != nil && day.After(truncateToDay(*end)) {
		return false
	}
	return true
}

// InLocation reports whether target is a case-insensitive substring of
// candidate. This is deliberately permissive: "Europe" matches
// "Berlin, Germany" only when the listing already encodes the
// continent in its location string.
func InLocation(candidate, target string) bool {
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(target))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
