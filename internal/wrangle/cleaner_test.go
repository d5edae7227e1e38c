package wrangle

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
	"github.com/couchcryptid/launch-data-pipeline/internal/observability"
	"github.com/couchcryptid/launch-data-pipeline/internal/table"
)

func testCleaner() *Cleaner {
	return NewCleaner(slog.New(slog.DiscardHandler), observability.NewMetricsForTesting())
}

func scrapedFixture() *table.Table {
	t := table.New([]string{
		"Flight No.", "Date and time (UTC)", "Version, booster[b]",
		"Launch site", "Payload[c]", "Payload mass", "Orbit", "Customer",
		"Launch outcome", "Booster landing",
	})
	t.AppendRow([]string{
		"1", "June 4, 2010 18:45", "F9 v1.0", "Cape Canaveral SLC-40",
		"Dragon Qualification Unit", "~16,800 kg (37,000 lb)", "LEO", "SpaceX",
		"Success", "Failure",
	})
	t.AppendRow([]string{
		"2", "December 8, 2010 15:43[12]", "F9 v1.0", "Cape Canaveral SLC-40",
		"Dragon demo flight C1", "Unknown", "LEO", "NASA",
		"Success", "Failure",
	})
	t.AppendRow([]string{
		"3", "not a date", "F9 v1.1", "Vandenberg SLC-4E",
		"CASSIOPE", "500 kg", "Polar", "MDA",
		"Failure", "No attempt",
	})
	// exact duplicate of flight 3
	t.AppendRow([]string{
		"3", "not a date", "F9 v1.1", "Vandenberg SLC-4E",
		"CASSIOPE", "500 kg", "Polar", "MDA",
		"Failure", "No attempt",
	})
	return t
}

func TestCleanStampsProcessedAt(t *testing.T) {
	frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { domain.SetClock(nil) })

	res := testCleaner().Clean(scrapedFixture())
	assert.Equal(t, frozen, res.ProcessedAt)
}

func TestCleanProducesCanonicalColumns(t *testing.T) {
	tab := scrapedFixture()
	res := testCleaner().Clean(tab)

	assert.Equal(t, 4, res.RowsIn)
	assert.Equal(t, 3, res.RowsOut)
	assert.Equal(t, 1, res.DuplicatesRemoved)

	for _, col := range domain.CanonicalColumns {
		assert.True(t, tab.HasColumn(col), "missing column %s", col)
	}
}

func TestCleanDerivedFeatures(t *testing.T) {
	tab := scrapedFixture()
	res := testCleaner().Clean(tab)

	assert.Equal(t, []string{"16800", "0", "500"}, tab.Column(domain.ColPayloadMassKg))
	assert.Equal(t, []string{"2010-06-04 18:45:00", "2010-12-08 15:43:00", ""}, tab.Column(domain.ColDate))
	assert.Equal(t, []string{"2010", "2010", ""}, tab.Column(domain.ColLaunchYear))
	assert.Equal(t, []string{"CCS", "CCS", "VS"}, tab.Column(domain.ColLaunchSiteCode))
	assert.Equal(t, []string{"1", "1", "0"}, tab.Column(domain.ColSuccessFlag))
	assert.Equal(t, 2, res.ValidDates)
	assert.InDelta(t, 66.7, res.SuccessRate, 0.1)
}

func TestCleanRenamesSourceColumns(t *testing.T) {
	tab := scrapedFixture()
	testCleaner().Clean(tab)

	assert.True(t, tab.HasColumn(domain.ColFlightNumber))
	assert.True(t, tab.HasColumn(domain.ColBoosterVersion))
	assert.False(t, tab.HasColumn("Flight No."))
	assert.False(t, tab.HasColumn("Version, booster[b]"))
}

func TestCleanMissingPayloadMassColumn(t *testing.T) {
	tab := table.New([]string{"Flight No.", "Launch outcome"})
	tab.AppendRow([]string{"1", "Success"})
	tab.AppendRow([]string{"2", "Failure"})

	testCleaner().Clean(tab)

	assert.Equal(t, []string{"0", "0"}, tab.Column(domain.ColPayloadMassKg))
}

func TestCleanBadFlightNumber(t *testing.T) {
	tab := table.New([]string{"Flight No.", "Launch outcome"})
	tab.AppendRow([]string{"abc", "Success"})
	tab.AppendRow([]string{"7", "Success"})

	testCleaner().Clean(tab)

	assert.Equal(t, []string{"", "7"}, tab.Column(domain.ColFlightNumber))
}

func TestCleanEmptyTable(t *testing.T) {
	tab := table.New([]string{"Flight No."})
	res := testCleaner().Clean(tab)

	assert.Equal(t, 0, res.RowsOut)
	assert.Zero(t, res.SuccessRate)
	for _, col := range domain.CanonicalColumns {
		assert.True(t, tab.HasColumn(col))
	}
}

func TestRunWritesThreeOutputs(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "raw.csv")
	require.NoError(t, scrapedFixture().WriteFile(input))

	out := Outputs{
		Cleaned:   filepath.Join(dir, "processed", "cleaned.csv"),
		Dashboard: filepath.Join(dir, "dashboard.csv"),
		EDA:       filepath.Join(dir, "processed", "eda.csv"),
	}
	res, err := testCleaner().Run(input, out)
	require.NoError(t, err)
	assert.Equal(t, 3, res.RowsOut)

	for _, path := range []string{out.Cleaned, out.Dashboard, out.EDA} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size())
	}

	eda, err := os.ReadFile(out.EDA)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(eda)), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Join(domain.CanonicalColumns, ","), lines[0])
}

func TestRunMissingInput(t *testing.T) {
	_, err := testCleaner().Run(filepath.Join(t.TempDir(), "absent.csv"), Outputs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load raw data")
}

func TestEDARecordsProjection(t *testing.T) {
	tab := scrapedFixture()
	testCleaner().Clean(tab)

	records := EDARecords(tab)
	require.Len(t, records, 3)
	assert.Equal(t, "1", records[0].FlightNumber)
	assert.Equal(t, 16800.0, records[0].PayloadMassKg)
	assert.Equal(t, 1, records[0].SuccessFlag)
	assert.Equal(t, "CASSIOPE", records[2].Payload)
	assert.Equal(t, 0, records[2].SuccessFlag)
}
