// Package conference defines the data model shared by the scraping,
// contact-mining, and outreach stages: a Conference discovered on a
// listing site and the Contacts recovered from its website.
package conference

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Contact holds the details of one person recovered from a conference
// website. A Contact is terminal once created; the owning Conference
// only ever appends.
type Contact struct {
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// String returns a short human-readable form of the contact.
func (c Contact) String() string {
	role := c.Role
	if role == "" {
		role = "Unknown role"
	}
	return fmt.Sprintf("%s (%s) - %s", c.Name, role, c.Email)
}

// Conference represents one conference accepted from a listing source.
// Contacts are kept in discovery order.
type Conference struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Location      string     `json:"location"`
	WebsiteURL    string     `json:"website_url"`
	Description   string     `json:"description,omitempty"`
	Contacts      []Contact  `json:"contacts"`
	OutreachEmail string     `json:"outreach_email,omitempty"`
	Source        string     `json:"source,omitempty"`
	DiscoveredAt  time.Time  `json:"discovered_at"`
}

// New creates a Conference with a fresh ID and DiscoveredAt set to now.
func New(title string, start time.Time, end *time.Time, location, websiteURL, description string) *Conference {
	return &Conference{
		ID:           uuid.New(),
		Title:        title,
		StartDate:    start,
		EndDate:      end,
		Location:     location,
		WebsiteURL:   websiteURL,
		Description:  description,
		Contacts:     []Contact{},
		DiscoveredAt: time.Now().UTC(),
	}
}

// AddContact appends a contact unless one with the same non-empty
// email is already present. Contacts without an email are never
// deduplicated against each other. Returns true if the contact was
// added.
func (c *Conference) AddContact(contact Contact) bool {
	if contact.Email != "" {
		for _, existing := range c.Contacts {
			if existing.Email == contact.Email {
				return false
			}
		}
	}
	c.Contacts = append(c.Contacts, contact)
	return true
}

// HasContacts reports whether any contacts have been recovered.
func (c *Conference) HasContacts() bool {
	return len(c.Contacts) > 0
}

// String returns a short human-readable form of the conference.
func (c *Conference) String() string {
	dates := c.StartDate.Format("2006-01-02")
	if c.EndDate != nil {
		dates += " to " + c.EndDate.Format("2006-01-02")
	}
	return fmt.Sprintf("%s (%s) - %s", c.Title, dates, c.Location)
}
