package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/launch-data-pipeline/internal/adapter/spacex"
	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
	"github.com/couchcryptid/launch-data-pipeline/internal/table"
)

var fetchAPICmd = &cobra.Command{
	Use:   "fetch-api",
	Short: "Fetch launch data from the SpaceX API into a raw CSV",
	RunE:  runFetchAPI,
}

func runFetchAPI(cmd *cobra.Command, args []string) error {
	cfg, logger, metrics, err := setup()
	if err != nil {
		return err
	}

	client := spacex.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)

	start := time.Now()
	launches, err := client.Launches(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch launches: %w", err)
	}
	metrics.FetchDuration.WithLabelValues("launches").Observe(time.Since(start).Seconds())

	t := launchesToTable(launches)
	if err := t.WriteFile(cfg.RawAPIFile()); err != nil {
		return fmt.Errorf("save raw data: %w", err)
	}

	metrics.RowsFetched.Add(float64(len(launches)))
	logger.Info("raw launch data saved", "path", cfg.RawAPIFile(), "rows", len(launches))
	return nil
}

// launchesToTable flattens API launches into the raw CSV shape. Payload ids
// are joined with ";" since a launch can carry several.
func launchesToTable(launches []domain.Launch) *table.Table {
	t := table.New([]string{
		"id", "name", "flight_number", "date_utc", "success", "upcoming",
		"rocket", "launchpad", "payloads",
	})
	for _, l := range launches {
		success := ""
		if l.Success != nil {
			success = strconv.FormatBool(*l.Success)
		}
		t.AppendRow([]string{
			l.ID,
			l.Name,
			strconv.Itoa(l.FlightNumber),
			l.DateUTC.Format(time.RFC3339),
			success,
			strconv.FormatBool(l.Upcoming),
			l.Rocket,
			l.Launchpad,
			strings.Join(l.Payloads, ";"),
		})
	}
	return t
}
