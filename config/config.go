// Package config holds the run configuration consumed by the
// pipeline: which sources to scrape, the search criteria, the result
// cap, the politeness delay bounds, and the sender identity used for
// email drafting. Configuration is assembled from defaults, an
// optional YAML file, environment variables (optionally loaded from a
// .env file), and command-line flags, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/outreach"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/scrape"
)

// Search is the full configuration for one pipeline run.
type Search struct {
	Sources        []string          `yaml:"sources"`
	Feeds          map[string]string `yaml:"feeds,omitempty"`
	Keywords       []string          `yaml:"keywords"`
	Location       string            `yaml:"location"`
	StartDate      string            `yaml:"start_date"`
	EndDate        string            `yaml:"end_date,omitempty"`
	MaxConferences int               `yaml:"max_conferences"`
	DelayMin       float64           `yaml:"delay_min"`
	DelayMax       float64           `yaml:"delay_max"`
}

// Default returns the configuration used when nothing else is
// specified: the three built-in sources, AI-related keywords, Europe,
// and a search window opening today.
func Default() Search {
	return Search{
		Sources:        []string{"conferenceindex", "10times", "eventbrite"},
		Keywords:       []string{"AI", "Tech", "Artificial Intelligence", "Machine Learning"},
		Location:       "Europe",
		StartDate:      time.Now().Format("2006-01-02"),
		MaxConferences: 10,
		DelayMin:       2,
		DelayMax:       5,
	}
}

// LoadFile loads a Search from a YAML file. Returns nil if the file
// doesn't exist (not an error); returns an error if the file exists
// but cannot be parsed.
func LoadFile(path string) (*Search, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Search
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Merge overlays the non-zero fields of other onto s. Used to apply a
// config file on top of the defaults.
func (s *Search) Merge(other Search) {
	if len(other.Sources) > 0 {
		s.Sources = other.Sources
	}
	if len(other.Feeds) > 0 {
		s.Feeds = other.Feeds
	}
	if len(other.Keywords) > 0 {
		s.Keywords = other.Keywords
	}
	if other.Location != "" {
		s.Location = other.Location
	}
	if other.StartDate != "" {
		s.StartDate = other.StartDate
	}
	if other.EndDate != "" {
		s.EndDate = other.EndDate
	}
	if other.MaxConferences != 0 {
		s.MaxConferences = other.MaxConferences
	}
	if other.DelayMin != 0 {
		s.DelayMin = other.DelayMin
	}
	if other.DelayMax != 0 {
		s.DelayMax = other.DelayMax
	}
}

// LoadEnv loads a .env file from the working directory into the
// process environment. A missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides the delay bounds from SCRAPE_DELAY_MIN and
// SCRAPE_DELAY_MAX when set.
func (s *Search) ApplyEnv() {
	if v, err := strconv.ParseFloat(os.Getenv("SCRAPE_DELAY_MIN"), 64); err == nil {
		s.DelayMin = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("SCRAPE_DELAY_MAX"), 64); err == nil {
		s.DelayMax = v
	}
}

// Criteria parses the date bounds and returns the filter criteria for
// the scraping stage.
func (s *Search) Criteria() (scrape.Criteria, error) {
	start, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		return scrape.Criteria{}, fmt.Errorf("invalid start_date %q: %w", s.StartDate, err)
	}

	var end *time.Time
	if s.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", s.EndDate)
		if err != nil {
			return scrape.Criteria{}, fmt.Errorf("invalid end_date %q: %w", s.EndDate, err)
		}
		if parsed.Before(start) {
			return scrape.Criteria{}, fmt.Errorf("end_date %s is before start_date %s", s.EndDate, s.StartDate)
		}
		end = &parsed
	}

	return scrape.Criteria{
		Keywords: s.Keywords,
		Location: s.Location,
		Start:    start,
		End:      end,
	}, nil
}

// Validate checks the configuration before any page is fetched. A
// failure here is the only fatal error in the pipeline.
func (s *Search) Validate() error {
	if len(s.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}
	if len(s.Keywords) == 0 {
		return fmt.Errorf("no keywords configured")
	}
	if s.MaxConferences <= 0 {
		return fmt.Errorf("max_conferences must be positive, got %d", s.MaxConferences)
	}
	if s.DelayMin < 0 || s.DelayMax < s.DelayMin {
		return fmt.Errorf("invalid delay bounds: min=%g max=%g", s.DelayMin, s.DelayMax)
	}
	if _, err := s.Criteria(); err != nil {
		return err
	}
	return nil
}

// LoadIdentity reads the sender identity from the environment.
func LoadIdentity() outreach.Identity {
	return outreach.Identity{
		CompanyName:        getEnv("COMPANY_NAME", "WhyAI"),
		CompanyDescription: os.Getenv("COMPANY_DESCRIPTION"),
		SpeakerName:        os.Getenv("SPEAKER_NAME"),
		SpeakerTitle:       os.Getenv("SPEAKER_TITLE"),
		SpeakerBio:         os.Getenv("SPEAKER_BIO"),
	}
}

// getEnv returns the value of an environment variable or a default
// value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
