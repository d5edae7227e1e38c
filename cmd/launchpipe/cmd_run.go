package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all pipeline stages sequentially",
	Long: "Executes fetch-api, scrape, wrangle, dashboard, and report in order,\n" +
		"each as a child process. A failed stage is logged and the rest still run.",
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	_, logger, metrics, err := setup()
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stages := []pipeline.Stage{
		{Name: "fetch-api", Args: []string{"fetch-api"}},
		{Name: "scrape", Args: []string{"scrape"}},
		{Name: "wrangle", Args: []string{"wrangle"}},
		{Name: "dashboard", Args: []string{"dashboard"}},
		{Name: "report", Args: []string{"report"}},
	}

	runner := pipeline.NewRunner(exe, stages, logger, metrics)
	runner.Run(ctx)
	return nil
}
