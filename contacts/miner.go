// Package contacts recovers named people with roles, emails, phones,
// and social links from rendered conference website pages, and
// proposes fallback contact pages when the homepage yields nothing.
package contacts

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
)

var (
	emailRe     = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe     = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(?\d{1,4}\)?[-.\s]?)?(?:\d{1,4}[-.\s]?){1,3}\d{1,4}`)
	nameTokenRe = regexp.MustCompile(`[a-zA-Z]+`)
)

// organizerRoles classifies a role string as event-organizing. A
// contact with an organizer role is kept even without an email.
var organizerRoles = []string{
	"organizer", "organiser", "coordinator", "manager", "director",
	"chair", "lead", "head", "event manager", "event director",
	"conference chair", "program chair", "committee chair",
}

// sectionHeadings are container labels mistaken for names by the
// heading-based extraction; they are never accepted as a person.
var sectionHeadings = map[string]bool{
	"name": true, "team": true, "staff": true,
	"committee": true, "organizers": true, "speakers": true,
}

var (
	peopleSectionTokens = []string{"team", "staff", "committee", "organizer", "speaker"}
	personBlockTokens   = []string{"person", "member", "card", "item", "profile"}
	roleTokens          = []string{"role", "position", "title", "job"}
)

// Miner extracts contacts from one rendered page via layered
// heuristics: structured person blocks first, contact-labelled
// sections second, and a page-wide email fallback when both come up
// empty. Results are deduplicated by non-empty email, first occurrence
// winning.
type Miner struct {
	Logger *log.Logger
}

// Mine recovers zero or more contacts from the page.
func (m *Miner) Mine(html string) ([]conference.Contact, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	emails := pageEmails(doc)
	var contacts []conference.Contact

	// Strategy A: person blocks inside team/staff/committee sections.
	doc.Find("section, div").Each(func(_ int, section *goquery.Selection) {
		if !attrContainsAny(section, peopleSectionTokens) {
			return
		}

		persons := section.Find("div, li").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			return attrContainsAny(sel, personBlockTokens)
		})
		if persons.Length() == 0 {
			persons = section.Children()
		}

		persons.Each(func(_ int, person *goquery.Selection) {
			if contact, ok := m.personContact(person, emails); ok {
				contacts = appendContact(contacts, contact)
			}
		})
	})

	// Strategy B: contact-labelled sections holding a mailto link.
	doc.Find("section, div").Each(func(_ int, section *goquery.Selection) {
		if !attrContainsAny(section, []string{"contact"}) {
			return
		}
		href, ok := section.Find("a[href^='mailto:']").First().Attr("href")
		if !ok {
			return
		}
		email := stripMailto(href)
		if email == "" {
			return
		}
		name := cleanText(section.Find("h2, h3, h4, h5, strong, b").First().Text())
		if name == "" {
			name = "Contact"
		}
		contacts = appendContact(contacts, conference.Contact{
			Name:  name,
			Role:  "Contact",
			Email: email,
		})
	})

	// Fallback: raw emails on a page with no structured contacts.
	if len(contacts) == 0 {
		for _, email := range emails {
			contacts = append(contacts, fallbackContact(email))
		}
	}

	return contacts, nil
}

// personContact extracts one contact from a candidate person block.
// The block is rejected when no plausible name is found, or when
// neither an email nor an organizer-classified role backs it up.
func (m *Miner) personContact(person *goquery.Selection, emails []string) (conference.Contact, bool) {
	named := person.Find("h2, h3, h4, h5, strong, b, span, div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return attrContainsAny(sel, []string{"name"})
	}).First()

	var name string
	if named.Length() > 0 {
		name = cleanText(named.Text())
	} else {
		name = cleanText(person.Find("h2, h3, h4, h5").First().Text())
	}
	if utf8.RuneCountInString(name) < 3 || sectionHeadings[strings.ToLower(name)] {
		return conference.Contact{}, false
	}

	role := ""
	roleSel := person.Find("p, span, div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return attrContainsAny(sel, roleTokens)
	}).First()
	if roleSel.Length() > 0 {
		role = cleanText(roleSel.Text())
	} else {
		// First short sibling text that isn't the name itself.
		person.Find("p, span, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := cleanText(sel.Text())
			if text != "" && text != name && len(text) < 50 {
				role = text
				return false
			}
			return true
		})
	}

	isOrganizer := organizerRole(role)

	email := ""
	if href, ok := person.Find("a[href^='mailto:']").First().Attr("href"); ok {
		email = stripMailto(href)
	}
	if email == "" {
		email = emailRe.FindString(person.Text())
	}
	if email == "" {
		email = matchEmailToName(name, emails)
	}

	phone := ""
	if href, ok := person.Find("a[href^='tel:']").First().Attr("href"); ok {
		phone = strings.TrimPrefix(href, "tel:")
	} else {
		phone = strings.TrimSpace(phoneRe.FindString(person.Text()))
	}

	linkedin := ""
	if href, ok := person.Find("a[href*='linkedin.com']").First().Attr("href"); ok {
		linkedin = href
	}

	// A named person with neither an email nor an organizer role is
	// noise.
	if email == "" && !isOrganizer {
		return conference.Contact{}, false
	}

	return conference.Contact{
		Name:     name,
		Role:     role,
		Email:    email,
		Phone:    phone,
		LinkedIn: linkedin,
	}, true
}

// pageEmails collects distinct emails from page text and mailto links,
// in first-seen order.
func pageEmails(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var emails []string

	add := func(email string) {
		if email != "" && !seen[email] {
			seen[email] = true
			emails = append(emails, email)
		}
	}

	for _, match := range emailRe.FindAllString(doc.Text(), -1) {
		add(match)
	}
	doc.Find("a[href^='mailto:']").Each(func(_ int, link *goquery.Selection) {
		if href, ok := link.Attr("href"); ok {
			add(stripMailto(href))
		}
	})

	return emails
}

// fallbackContact manufactures a contact from a bare email, deriving a
// display name from the capitalized alphabetic runs of the local part.
func fallbackContact(email string) conference.Contact {
	local := strings.SplitN(email, "@", 2)[0]
	var words []string
	for _, run := range nameTokenRe.FindAllString(local, -1) {
		words = append(words, strings.ToUpper(run[:1])+strings.ToLower(run[1:]))
	}
	name := strings.Join(words, " ")
	if name == "" {
		name = "Unknown"
	}
	return conference.Contact{Name: name, Role: "Contact", Email: email}
}

// matchEmailToName fuzzy-matches a person's name tokens against the
// page-wide email set: a token of the lowercased name appearing as a
// substring of an email's local part claims that email.
func matchEmailToName(name string, emails []string) string {
	tokens := strings.Fields(strings.ToLower(name))
	for _, email := range emails {
		local := strings.ToLower(strings.SplitN(email, "@", 2)[0])
		for _, token := range tokens {
			if strings.Contains(local, token) {
				return email
			}
		}
	}
	return ""
}

func organizerRole(role string) bool {
	if role == "" {
		return false
	}
	lower := strings.ToLower(role)
	for _, keyword := range organizerRoles {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// appendContact adds a contact unless one with the same non-empty
// email already exists. Empty-email contacts are never deduplicated
// against each other.
func appendContact(contacts []conference.Contact, contact conference.Contact) []conference.Contact {
	if contact.Email != "" {
		for _, existing := range contacts {
			if existing.Email == contact.Email {
				return contacts
			}
		}
	}
	return append(contacts, contact)
}

// attrContainsAny reports whether the element's class or id attribute
// contains any of the tokens, case-insensitively.
func attrContainsAny(sel *goquery.Selection, tokens []string) bool {
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	attrs := strings.ToLower(class + " " + id)
	if strings.TrimSpace(attrs) == "" {
		return false
	}
	for _, token := range tokens {
		if strings.Contains(attrs, token) {
			return true
		}
	}
	return false
}

// stripMailto extracts the address from a mailto: href, dropping any
// query parameters.
func stripMailto(href string) string {
	email := strings.TrimPrefix(href, "mailto:")
	if i := strings.IndexByte(email, '?'); i >= 0 {
		email = email[:i]
	}
	if !emailRe.MatchString(email) {
		return ""
	}
	return email
}

func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
