package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/adapter/spacex"
	"github.com/couchcryptid/launch-data-pipeline/internal/dashboard"
	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the interactive launch dashboard",
	Long: "Fetches live API data, joins it to Falcon 9 launches with resolved\n" +
		"payload mass, and serves the dashboard until interrupted.",
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, logger, metrics, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := spacex.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	data, err := client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch api data: %w", err)
	}

	dataset := domain.BuildDataset(data, domain.JoinOptions{
		Rockets:            []string{"Falcon 9"},
		MaxLaunches:        cfg.DashboardMaxLaunches,
		RequirePayloadMass: true,
	})
	logger.Info("dashboard dataset ready",
		"launches", len(dataset.Launches),
		"sites", len(dataset.Sites()),
	)

	srv := dashboard.NewServer(dataset, cfg.DashboardAddr, cfg.ShutdownTimeout, logger, metrics)
	return srv.Start(ctx)
}
