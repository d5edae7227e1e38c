package main

import (
	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/wrangle"
)

var wrangleCmd = &cobra.Command{
	Use:   "wrangle",
	Short: "Clean the scraped launch table into analysis-ready CSVs",
	RunE:  runWrangle,
}

func runWrangle(cmd *cobra.Command, args []string) error {
	cfg, logger, metrics, err := setup()
	if err != nil {
		return err
	}

	cleaner := wrangle.NewCleaner(logger, metrics)
	_, err = cleaner.Run(cfg.ScrapedFile(), wrangle.Outputs{
		Cleaned:   cfg.CleanedFile(),
		Dashboard: cfg.DashboardFile(),
		EDA:       cfg.EDAFile(),
	})
	return err
}
