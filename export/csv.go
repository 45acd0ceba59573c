// Package export flattens the pipeline's results for persistence: one
// CSV record per (conference, contact) pair, plus one contact-less
// record per conference with no contacts, and an optional ICS calendar
// of the accepted conferences.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
)

// Header is the fixed CSV column set, in order.
var Header = []string{
	"conference_name", "date", "end_date", "location", "website_url",
	"organizer_name", "organizer_role", "email", "phone", "linkedin",
	"generated_email_message",
}

// WriteCSV writes the flattened records for the given conferences.
func WriteCSV(w io.Writer, conferences []*conference.Conference) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, conf := range conferences {
		endDate := ""
		if conf.EndDate != nil {
			endDate = conf.EndDate.Format("2006-01-02")
		}
		common := []string{
			conf.Title,
			conf.StartDate.Format("2006-01-02"),
			endDate,
			conf.Location,
			conf.WebsiteURL,
		}

		if !conf.HasContacts() {
			record := append(append([]string{}, common...), "", "", "", "", "", "")
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
			continue
		}

		for _, contact := range conf.Contacts {
			record := append(append([]string{}, common...),
				contact.Name,
				contact.Role,
				contact.Email,
				contact.Phone,
				contact.LinkedIn,
				conf.OutreachEmail,
			)
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the flattened records to a file, creating parent
// directories as needed.
func ExportCSV(path string, conferences []*conference.Conference) error {
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

	return WriteCSV(f, conferences)
}
