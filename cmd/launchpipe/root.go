// launchpipe is the pipeline CLI: fetch-api, scrape, wrangle, dashboard,
// map, report, and run (all stages sequentially).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/config"
	"github.com/couchcryptid/launch-data-pipeline/internal/observability"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "launchpipe",
	Short: "Falcon 9 launch data pipeline",
	Long: "launchpipe collects SpaceX launch data from the v4 API and Wikipedia,\n" +
		"cleans it into analysis-ready CSVs, and serves dashboards, maps, and reports.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(fetchAPICmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(wrangleCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.Version = version
}

// setup loads config and builds the shared logger and metrics for a stage.
func setup() (*config.Config, *slog.Logger, *observability.Metrics, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	return cfg, logger, observability.NewMetrics(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
