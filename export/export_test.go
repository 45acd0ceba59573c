package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
)

func testConferences() []*conference.Conference {
	start := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 17, 0, 0, 0, 0, time.UTC)

	withContacts := conference.New("AI Summit", start, &end, "Berlin, Germany", "https://aisummit.example", "The leading AI event")
	withContacts.AddContact(conference.Contact{
		Name: "Jane Doe", Role: "Event Director",
		Email: "jane@aisummit.example", Phone: "+4930123",
		LinkedIn: "https://linkedin.com/in/janedoe",
	})
	withContacts.AddContact(conference.Contact{Name: "John Smith", Email: "john@aisummit.example"})
	withContacts.OutreachEmail = "Subject: Speaking Opportunity at AI Summit"

	noContacts := conference.New("ML Forum", start, nil, "Munich, Germany", "https://mlforum.example", "")

	return []*conference.Conference{withContacts, noContacts}
}

// TestWriteCSV verifies one record per (conference, contact) pair and
// one contact-less record per empty conference.
func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, testConferences()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4, "header + two contact rows + one contact-less row")
	assert.Equal(t, Header, records[0])

	first := records[1]
	assert.Equal(t, "AI Summit", first[0])
	assert.Equal(t, "2025-07-15", first[1])
	assert.Equal(t, "2025-07-17", first[2])
	assert.Equal(t, "Berlin, Germany", first[3])
	assert.Equal(t, "https://aisummit.example", first[4])
	assert.Equal(t, "Jane Doe", first[5])
	assert.Equal(t, "Event Director", first[6])
	assert.Equal(t, "jane@aisummit.example", first[7])
	assert.Equal(t, "+4930123", first[8])
	assert.Equal(t, "https://linkedin.com/in/janedoe", first[9])
	assert.Equal(t, "Subject: Speaking Opportunity at AI Summit", first[10])

	second := records[2]
	assert.Equal(t, "John Smith", second[5])

	last := records[3]
	assert.Equal(t, "ML Forum", last[0])
	assert.Equal(t, "", last[2], "no end date")
	for _, field := range last[5:] {
		assert.Empty(t, field, "contact fields empty for a conference with no contacts")
	}
}

// TestWriteCSV_Empty verifies an empty run still produces a header.
func TestWriteCSV_Empty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Header, records[0])
}

// TestWriteICS verifies the calendar has one VEVENT per conference.
func TestWriteICS(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteICS(&buf, testConferences()))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:AI Summit")
	assert.Contains(t, out, "SUMMARY:ML Forum")
	assert.Contains(t, out, "LOCATION:Berlin\\, Germany")
}
