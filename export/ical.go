package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	ical "github.com/emersion/go-ical"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
)

// WriteICS writes the conferences as an iCalendar with one VEVENT
// each, so results can be reviewed in a calendar client. Conferences
// without an end date get a one-day event.
func WriteICS(w io.Writer, conferences []*conference.Conference) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//conference-outreach-agent//EN")

	for _, conf := range conferences {
		event := ical.NewComponent(ical.CompEvent)
		event.Props.SetText(ical.PropUID, conf.ID.String())
		event.Props.SetText(ical.PropSummary, conf.Title)
		event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
		event.Props.SetDateTime(ical.PropDateTimeStart, conf.StartDate)

		end := conf.StartDate.AddDate(0, 0, 1)
		if conf.EndDate != nil {
			// DTEND is exclusive.
			end = conf.EndDate.AddDate(0, 0, 1)
		}
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)

		if conf.Location != "" {
			event.Props.SetText(ical.PropLocation, conf.Location)
		}
		if conf.Description != "" {
			event.Props.SetText(ical.PropDescription, conf.Description)
		}
		event.Props.SetText(ical.PropURL, conf.WebsiteURL)

		cal.Children = append(cal.Children, event)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// ExportICS writes the calendar to a file, creating parent directories
// as needed.
func ExportICS(path string, conferences []*conference.Conference) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return WriteICS(f, conferences)
}
