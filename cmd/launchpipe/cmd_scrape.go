package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/adapter/wiki"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the launch list table from Wikipedia into a CSV",
	RunE:  runScrape,
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, logger, metrics, err := setup()
	if err != nil {
		return err
	}

	scraper := wiki.NewScraper(cfg.ScrapeURL, cfg.HTTPTimeout, logger)
	t, err := scraper.FetchTable(cmd.Context())
	if err != nil {
		return fmt.Errorf("scrape launch table: %w", err)
	}

	if err := t.WriteFile(cfg.ScrapedFile()); err != nil {
		return fmt.Errorf("save scraped data: %w", err)
	}

	metrics.RowsScraped.Add(float64(len(t.Rows)))
	logger.Info("scraped launch data saved", "path", cfg.ScrapedFile(), "rows", len(t.Rows))
	return nil
}
