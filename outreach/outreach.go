// Package outreach drafts personalized speaker-outreach emails for
// conference organizers. The TemplateDrafter builds a fixed email from
// conference and contact fields; the OpenAIDrafter asks a chat model
// for a fully personalized one. The pipeline falls back from the
// latter to the former on any failure.
package outreach

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
)

// Identity holds the sender-side strings woven into every email.
type Identity struct {
	CompanyName        string
	CompanyDescription string
	SpeakerName        string
	SpeakerTitle       string
	SpeakerBio         string
}

// Drafter produces outreach email text for a conference's primary
// contact.
type Drafter interface {
	Draft(ctx context.Context, conf *conference.Conference, contact conference.Contact) (string, error)
}

// TemplateDrafter builds the fixed fallback email. It never fails.
type TemplateDrafter struct {
	Identity Identity
}

// Draft renders the template email for the given conference and
// contact.
func (d *TemplateDrafter) Draft(_ context.Context, conf *conference.Conference, contact conference.Contact) (string, error) {
	month := conf.StartDate.Format("January 2006")

	email := fmt.Sprintf(`Subject: Speaking Opportunity at %s

Dear %s,

I noticed that you're organizing %s in %s this %s, and I'm reaching out to explore the possibility of contributing as a speaker.

At %s, we specialize in %s I believe our expertise would be valuable to your audience, particularly on topics related to the latest advancements in AI technology and its practical applications.

%s, our %s, has extensive experience presenting at similar events and consistently receives positive feedback for delivering engaging, informative sessions that balance technical insights with practical takeaways.

Would you be open to a brief call next week to discuss potential speaking opportunities or other ways we might contribute to your event? I'd be happy to share more details about our proposed topics and presentation format.

Thank you for considering this request. I look forward to the possibility of collaborating with you on making %s a success.

Best regards,

%s
%s
%s`,
		conf.Title,
		contact.Name,
		conf.Title, conf.Location, month,
		d.Identity.CompanyName, d.Identity.CompanyDescription,
		d.Identity.SpeakerName, d.Identity.SpeakerTitle,
		conf.Title,
		d.Identity.SpeakerName,
		d.Identity.SpeakerTitle,
		d.Identity.CompanyName,
	)

	return strings.TrimSpace(email), nil
}
