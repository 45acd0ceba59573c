// Package confdate normalizes the heterogeneous date-range text found
// on conference listing sites into a canonical start/end pair.
//
// Four grammars are recognized, tried in a fixed priority order:
//
//	15 Jul 2025 - 17 Jul 2025   explicit years on both ends
//	15-17 Jul 2025              shared month and year
//	15 Jul - 17 Jul 2025        year given once, on the end date
//	Jul 15, 2025 / Jul 15, 17, 2025
//
// A dash surrounded by spaces separates two full date tokens; a dash
// without spaces joins two day numbers. That distinction is structural,
// not a fallback order. Inputs matching none of the grammars are
// rejected with ErrUnparsable; callers skip the listing rather than
// guessing.
package confdate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparsable is returned when date text matches none of the
// recognized grammars, or only part of a range could be recovered.
var ErrUnparsable = errors.New("unparsable date text")

// DateRange is the parse result: a start date and an optional end
// date. End is nil for single-date inputs.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

var (
	dayRangeRe = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`)
	monthDayRe = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2})(?:,\s*(\d{1,2}))?,\s*(\d{4})$`)
)

// Parse normalizes date text into a DateRange. yearHint supplies the
// year for single-date inputs that omit one; pass 0 to reject such
// inputs instead. If the text contains a range separator, both
// boundary tokens must parse fully or the whole input is rejected.
func Parse(text string, yearHint int) (DateRange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return DateRange{}, fmt.Errorf("%w: empty input", ErrUnparsable)
	}

	// Dash with surrounding spaces: two full date tokens.
	if strings.Contains(text, " - ") {
		return parseSpacedRange(text)
	}

	// Dash without spaces: two day numbers sharing month and year.
	if m := dayRangeRe.FindStringSubmatch(text); m != nil {
		return parseDayRange(m)
	}

	// Month-first with comma, optionally carrying a second day.
	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		return parseMonthDay(m)
	}

	// Any remaining dash means a range we failed to split; a partial
	// parse must not be reported as a single date.
	if strings.Contains(text, "-") {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
	}

	start, ok := parseSingle(text, yearHint)
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
	}
	return DateRange{Start: start}, nil
}

// parseSpacedRange handles "15 Jul 2025 - 17 Jul 2025" and
// "15 Jul - 17 Jul 2025". The end token always carries the year; the
// start token inherits it when its own is missing.
func parseSpacedRange(text string) (DateRange, error) {
	parts := strings.SplitN(text, " - ", 2)
	startText := strings.TrimSpace(parts[0])
	endText := strings.TrimSpace(parts[1])

	end, ok := parseDayMonthYear(endText)
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
	}

	start, ok := parseDayMonthYear(startText)
	if !ok {
		start, ok = parseDayMonth(startText, end.Year())
	}
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
	}

	return makeRange(text, start, end)
}

func parseDayRange(m []string) (DateRange, error) {
	month, ok := parseMonth(m[3])
	if !ok {
		return DateRange{}, fmt.Errorf("%w: unknown month %q", ErrUnparsable, m[3])
	}
	year, _ := strconv.Atoi(m[4])
	startDay, _ := strconv.Atoi(m[1])
	endDay, _ := strconv.Atoi(m[2])

	start := time.Date(year, month, startDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month, endDay, 0, 0, 0, 0, time.UTC)
	return makeRange(m[0], start, end)
}

func parseMonthDay(m []string) (DateRange, error) {
	month, ok := parseMonth(m[1])
	if !ok {
		return DateRange{}, fmt.Errorf("%w: unknown month %q", ErrUnparsable, m[1])
	}
	year, _ := strconv.Atoi(m[4])
	startDay, _ := strconv.Atoi(m[2])

	start := time.Date(year, month, startDay, 0, 0, 0, 0, time.UTC)
	if m[3] == "" {
		return DateRange{Start: start}, nil
	}

	endDay, _ := strconv.Atoi(m[3])
	end := time.Date(year, month, endDay, 0, 0, 0, 0, time.UTC)
	return makeRange(m[0], start, end)
}

func parseSingle(text string, yearHint int) (time.Time, bool) {
	if t, ok := parseDayMonthYear(text); ok {
		return t, true
	}
	if yearHint > 0 {
		return parseDayMonth(text, yearHint)
	}
	return time.Time{}, false
}

func makeRange(text string, start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: end before start in %q", ErrUnparsable, text)
	}
	return DateRange{Start: start, End: &end}, nil
}

// parseDayMonthYear parses "15 Jul 2025" or "15 July 2025".
func parseDayMonthYear(text string) (time.Time, bool) {
	for _, layout := range []string{"2 Jan 2006", "2 January 2006"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseDayMonth parses "15 Jul" or "15 July", resolving against the
// given year.
func parseDayMonth(text string, year int) (time.Time, bool) {
	for _, layout := range []string{"2 Jan", "2 January"} {
		if t, err := time.Parse(layout, text); err == nil {
			return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parseMonth(text string) (time.Month, bool) {
	for _, layout := range []string{"Jan", "January"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Month(), true
		}
	}
	return 0, false
}
