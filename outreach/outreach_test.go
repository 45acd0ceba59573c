package outreach

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
)

// TestTemplateDrafter verifies the fallback email is assembled from
// conference, contact, and identity fields.
func TestTemplateDrafter(t *testing.T) {
	start := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	conf := conference.New("AI Summit", start, nil, "Berlin, Germany", "https://aisummit.example", "")
	contact := conference.Contact{Name: "Jane Doe", Role: "Event Director", Email: "jane@aisummit.example"}

	drafter := &TemplateDrafter{Identity: Identity{
		CompanyName:        "WhyAI",
		CompanyDescription: "enterprise NLP solutions.",
		SpeakerName:        "Ada Lovelace",
		SpeakerTitle:       "Chief Scientist",
	}}

	email, err := drafter.Draft(context.Background(), conf, contact)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(email, "Subject: Speaking Opportunity at AI Summit"))
	assert.Contains(t, email, "Dear Jane Doe,")
	assert.Contains(t, email, "AI Summit in Berlin, Germany this July 2025")
	assert.Contains(t, email, "At WhyAI, we specialize in")
	assert.Contains(t, email, "Ada Lovelace, our Chief Scientist")
}

// TestOpenAIDrafterPrompt verifies the prompt carries the conference
// and contact details, with the role default applied.
func TestOpenAIDrafterPrompt(t *testing.T) {
	start := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	conf := conference.New("AI Summit", start, nil, "Berlin, Germany", "https://aisummit.example", "")

	drafter := NewOpenAIDrafter("test-key", Identity{CompanyName: "WhyAI"})

	prompt := drafter.prompt(conf, conference.Contact{Name: "Jane Doe"})
	assert.Contains(t, prompt, "Conference: AI Summit")
	assert.Contains(t, prompt, "Date: 2025-07-15")
	assert.Contains(t, prompt, "Organizer: Jane Doe")
	assert.Contains(t, prompt, "Organizer Role: Event Organizer", "empty role defaults")

	prompt = drafter.prompt(conf, conference.Contact{Name: "Jane Doe", Role: "Program Chair"})
	assert.Contains(t, prompt, "Organizer Role: Program Chair")
}
