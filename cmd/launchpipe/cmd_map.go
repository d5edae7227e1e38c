package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/adapter/spacex"
	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
	"github.com/couchcryptid/launch-data-pipeline/internal/geo"
)

// mapRockets covers the whole SpaceX fleet, not just Falcon 9, so every pad
// that ever hosted a launch shows up with stats.
var mapRockets = []string{"Falcon 1", "Falcon 9", "Falcon Heavy", "Starship"}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Render the launch site map with per-site statistics",
	RunE:  runMap,
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, logger, _, err := setup()
	if err != nil {
		return err
	}

	client := spacex.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	data, err := client.FetchAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch api data: %w", err)
	}

	dataset := domain.BuildDataset(data, domain.JoinOptions{Rockets: mapRockets})
	renderer := geo.NewRenderer(logger, cfg.MapSeed)
	markers := renderer.Build(dataset)
	return renderer.Render(markers, cfg.MapFile)
}
