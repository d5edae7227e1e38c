package main

import (
	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate summary reports and static charts from cleaned data",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, logger, _, err := setup()
	if err != nil {
		return err
	}

	gen := report.NewGenerator(logger, cfg.FiguresDir(), cfg.ReportsDir())
	return gen.Run(cfg.CleanedFile())
}
