// Command confagent finds tech conferences matching keyword, location,
// and date criteria, mines their websites for organizer contacts, and
// drafts a personalized outreach email per conference.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/config"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/export"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/outreach"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/pipeline"
	"github.com/Bernardo4472/Conference-Outreach-Automation-Agent/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath    string
		sources    []string
		keywords   []string
		location   string
		startDate  string
		endDate    string
		maxConfs   int
		output     string
		icsPath    string
		renderMode string
	)

	cmd := &cobra.Command{
		Use:           "confagent",
		Short:         "Find conferences and draft outreach emails to their organizers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadEnv()
			logger := log.New(os.Stderr, "", log.LstdFlags)

			cfg := config.Default()
			if cfgPath != "" {
				fileCfg, err := config.LoadFile(cfgPath)
				if err != nil {
					return err
				}
				if fileCfg != nil {
					cfg.Merge(*fileCfg)
				}
			}
			if cmd.Flags().Changed("sources") {
				cfg.Sources = sources
			}
			if cmd.Flags().Changed("keywords") {
				cfg.Keywords = keywords
			}
			if cmd.Flags().Changed("location") {
				cfg.Location = location
			}
			if cmd.Flags().Changed("start-date") {
				cfg.StartDate = startDate
			}
			if cmd.Flags().Changed("end-date") {
				cfg.EndDate = endDate
			}
			if cmd.Flags().Changed("max-conferences") {
				cfg.MaxConferences = maxConfs
			}
			cfg.ApplyEnv()

			if err := cfg.Validate(); err != nil {
				return err
			}

			var renderer render.Renderer
			switch renderMode {
			case "http":
				renderer = render.NewHTTPRenderer()
			case "chrome":
				renderer = render.NewChromeRenderer()
			default:
				return fmt.Errorf("unknown render mode %q (want http or chrome)", renderMode)
			}

			identity := config.LoadIdentity()
			var drafter outreach.Drafter
			if key := os.Getenv("OPENAI_API_KEY"); key != "" {
				drafter = outreach.NewOpenAIDrafter(key, identity)
			} else {
				logger.Printf("OPENAI_API_KEY not set; outreach emails will use the template")
			}

			p := pipeline.New(cfg, renderer, drafter, identity, logger)
			conferences, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := export.ExportCSV(output, conferences); err != nil {
				return err
			}
			logger.Printf("exported %d conferences to %s", len(conferences), output)

			if icsPath != "" {
				if err := export.ExportICS(icsPath, conferences); err != nil {
					return err
				}
				logger.Printf("wrote calendar to %s", icsPath)
			}

			for _, conf := range conferences {
				fmt.Fprintln(cmd.OutOrStdout(), conf)
			}
			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringSliceVar(&sources, "sources", defaults.Sources, "conference sources to scrape, in order")
	cmd.Flags().StringSliceVar(&keywords, "keywords", defaults.Keywords, "keywords to filter conferences (OR-matched)")
	cmd.Flags().StringVar(&location, "location", defaults.Location, "location substring to filter conferences")
	cmd.Flags().StringVar(&startDate, "start-date", defaults.StartDate, "start of the search window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end of the search window (YYYY-MM-DD, optional)")
	cmd.Flags().IntVar(&maxConfs, "max-conferences", defaults.MaxConferences, "maximum number of conferences to process")
	cmd.Flags().StringVar(&output, "output", "conference_outreach_results.csv", "output CSV path")
	cmd.Flags().StringVar(&icsPath, "ics", "", "also write an iCalendar file to this path")
	cmd.Flags().StringVar(&renderMode, "render", "http", "page renderer: http or chrome")

	return cmd
}
