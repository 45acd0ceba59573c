// Package pipeline sequences the stages of one run: listing scraping
// across sources, per-conference contact mining with fallback page
// discovery, email drafting, and handoff to export. Sources and
// conferences are processed strictly sequentially, one rendered page
// at a time, with a randomized politeness delay between fetches. No
// recoverable failure aborts the run; only invalid configuration is
// fatal, before the first fetch.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/conference"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/config"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/contacts"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/outreach"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/render"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/scrape"
)

// Source is one listing adapter the pipeline can run: the built-in
// HTML sources and configured feed sources both satisfy it.
type Source interface {
	Discover(ctx context.Context, r render.Renderer, criteria scrape.Criteria, pause func(context.Context)) ([]*conference.Conference, error)
}

// Pipeline runs the full discovery-to-drafting sequence.
type Pipeline struct {
	Config   config.Search
	Renderer render.Renderer
	Miner    *contacts.Miner
	Drafter  outreach.Drafter // optional; nil means template only
	Fallback outreach.Drafter
	Logger   *log.Logger

	sources map[string]Source
	rng     *rand.Rand
}

// New assembles a pipeline from the given configuration. drafter may
// be nil, in which case every email comes from the template.
func New(cfg config.Search, r render.Renderer, drafter outreach.Drafter, identity outreach.Identity, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	sources := make(map[string]Source)
	for name, src := range scrape.Builtin(logger) {
		sources[name] = src
	}
	for name, feedURL := range cfg.Feeds {
		sources[name] = &scrape.FeedSource{Name: name, URL: feedURL, Logger: logger}
	}

	return &Pipeline{
		Config:   cfg,
		Renderer: r,
		Miner:    &contacts.Miner{Logger: logger},
		Drafter:  drafter,
		Fallback: &outreach.TemplateDrafter{Identity: identity},
		Logger:   logger,
		sources:  sources,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes the pipeline and returns the accepted conferences with
// their contacts and outreach emails.
func (p *Pipeline) Run(ctx context.Context) ([]*conference.Conference, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	criteria, err := p.Config.Criteria()
	if err != nil {
		return nil, err
	}

	conferences := p.discover(ctx, criteria)
	p.mineContacts(ctx, conferences)
	p.draftEmails(ctx, conferences)
	return conferences, nil
}

// discover runs the configured sources in order, accumulating results
// and truncating at the cap. A single source's failure is logged and
// skipped.
func (p *Pipeline) discover(ctx context.Context, criteria scrape.Criteria) []*conference.Conference {
	var all []*conference.Conference

	for _, name := range p.Config.Sources {
		src, ok := p.sources[name]
		if !ok {
			p.Logger.Printf("unsupported source: %s", name)
			continue
		}

		p.Logger.Printf("scraping conferences from %s...", name)
		confs, err := src.Discover(ctx, p.Renderer, criteria, p.pause)
		if err != nil {
			p.Logger.Printf("error scraping %s: %v", name, err)
			continue
		}
		p.Logger.Printf("found %d conferences from %s", len(confs), name)

		all = append(all, confs...)
		if len(all) >= p.Config.MaxConferences {
			all = all[:p.Config.MaxConferences]
			break
		}
	}

	return all
}

// mineContacts walks each conference's website: the homepage first,
// then the discovered candidate pages until one yields a contact or
// the list is exhausted. A conference ending up with zero contacts is
// not an error.
func (p *Pipeline) mineContacts(ctx context.Context, conferences []*conference.Conference) {
	for i, conf := range conferences {
		p.Logger.Printf("extracting contacts for conference %d/%d: %s", i+1, len(conferences), conf.Title)

		if err := p.mineConference(ctx, conf); err != nil {
			p.Logger.Printf("error extracting contacts for %q (%s): %v", conf.Title, conf.WebsiteURL, err)
		}

		if conf.HasContacts() {
			p.Logger.Printf("found %d contacts for %s", len(conf.Contacts), conf.Title)
		} else {
			p.Logger.Printf("no contacts found for %s", conf.Title)
		}

		p.pause(ctx)
	}
}

func (p *Pipeline) mineConference(ctx context.Context, conf *conference.Conference) error {
	home, err := p.Renderer.Render(ctx, conf.WebsiteURL)
	if err != nil {
		return fmt.Errorf("failed to fetch homepage: %w", err)
	}

	found, err := p.Miner.Mine(home)
	if err != nil {
		return err
	}
	for _, contact := range found {
		conf.AddContact(contact)
	}
	if conf.HasContacts() {
		return nil
	}

	pages, err := contacts.CandidatePages(home, conf.WebsiteURL)
	if err != nil {
		return err
	}

	for _, page := range pages {
		p.pause(ctx)

		p.Logger.Printf("visiting potential contact page: %s", page)
		html, err := p.Renderer.Render(ctx, page)
		if err != nil {
			p.Logger.Printf("error visiting %s: %v", page, err)
			continue
		}

		found, err := p.Miner.Mine(html)
		if err != nil {
			p.Logger.Printf("error mining %s: %v", page, err)
			continue
		}
		for _, contact := range found {
			conf.AddContact(contact)
		}
		if conf.HasContacts() {
			break
		}
	}

	return nil
}

// draftEmails attaches an outreach email to every conference with at
// least one contact, addressed to the first-discovered contact.
// Drafting failures fall back to the template and never propagate.
func (p *Pipeline) draftEmails(ctx context.Context, conferences []*conference.Conference) {
	for _, conf := range conferences {
		if !conf.HasContacts() {
			continue
		}
		primary := conf.Contacts[0]

		text := ""
		if p.Drafter != nil {
			drafted, err := p.Drafter.Draft(ctx, conf, primary)
			if err != nil {
				p.Logger.Printf("drafting failed for %q, falling back to template: %v", conf.Title, err)
			} else {
				text = drafted
			}
		}
		if text == "" {
			text, _ = p.Fallback.Draft(ctx, conf, primary)
		}

		conf.OutreachEmail = text
		p.Logger.Printf("generated email for %s", conf.Title)
	}
}

// pause sleeps for a random duration within the configured delay
// bounds, returning early if the context is cancelled.
func (p *Pipeline) pause(ctx context.Context) {
	span := p.Config.DelayMax - p.Config.DelayMin
	seconds := p.Config.DelayMin + p.rng.Float64()*span
	if seconds <= 0 {
		return
	}

	timer := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
