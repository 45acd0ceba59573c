package outreach

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
)

// OpenAIDrafter drafts emails with a chat model. Any API failure is
// returned to the caller, which falls back to the template.
type OpenAIDrafter struct {
	Client   *openai.Client
	Identity Identity
	Model    string
}

// NewOpenAIDrafter creates a drafter using the given API key.
func NewOpenAIDrafter(apiKey string, identity Identity) *OpenAIDrafter {
	return &OpenAIDrafter{
		Client:   openai.NewClient(apiKey),
		Identity: identity,
		Model:    openai.GPT4,
	}
}

// Draft asks the chat model for a personalized outreach email.
func (d *OpenAIDrafter) Draft(ctx context.Context, conf *conference.Conference, contact conference.Contact) (string, error) {
	resp, err := d.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       d.Model,
		Temperature: 0.7,
		MaxTokens:   1000,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert at writing personalized, professional outreach emails for business development.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: d.prompt(conf, contact),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call chat completion API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (d *OpenAIDrafter) prompt(conf *conference.Conference, contact conference.Contact) string {
	role := contact.Role
	if role == "" {
		role = "Event Organizer"
	}

	return fmt.Sprintf(`Write a personalized outreach email to a conference organizer with the following details:

Conference: %s
Date: %s
Location: %s
Organizer: %s
Organizer Role: %s

Company Information:
Company Name: %s
Company Description: %s

Speaker Information:
Speaker Name: %s
Speaker Title: %s
Speaker Bio: %s

The email should:
1. Be professional and personalized to the specific conference and organizer
2. Express interest in speaking or participating at the conference
3. Briefly highlight the company's expertise and the value we can bring to the conference
4. Suggest a follow-up call or meeting
5. Thank the organizer for their consideration
6. Include a professional signature

The tone should be friendly but professional, and the email should be concise (around 250-300 words).
Do not use generic phrases like "I hope this email finds you well" or "I am writing to inquire about".
Make it sound human and personalized, not like a mass email.`,
		conf.Title,
		conf.StartDate.Format("2006-01-02"),
		conf.Location,
		contact.Name,
		role,
		d.Identity.CompanyName,
		d.Identity.CompanyDescription,
		d.Identity.SpeakerName,
		d.Identity.SpeakerTitle,
		d.Identity.SpeakerBio,
	)
}
