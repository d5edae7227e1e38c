package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.spacexdata.com/v4", cfg.APIBaseURL)
	assert.Contains(t, cfg.ScrapeURL, "List_of_Falcon_9")
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "outputs", cfg.OutputDir)
	assert.Equal(t, "spacex_launch_map.html", cfg.MapFile)
	assert.Equal(t, ":8050", cfg.DashboardAddr)
	assert.Equal(t, 1000, cfg.DashboardMaxLaunches)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(0), cfg.MapSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SPACEX_API_URL", "http://localhost:9000/v4")
	t.Setenv("SCRAPE_URL", "http://localhost:9000/wiki")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("DATA_DIR", "/tmp/launch-data")
	t.Setenv("OUTPUT_DIR", "/tmp/launch-out")
	t.Setenv("DASHBOARD_ADDR", ":9050")
	t.Setenv("DASHBOARD_MAX_LAUNCHES", "50")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("MAP_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/v4", cfg.APIBaseURL)
	assert.Equal(t, "http://localhost:9000/wiki", cfg.ScrapeURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/launch-data", cfg.DataDir)
	assert.Equal(t, ":9050", cfg.DashboardAddr)
	assert.Equal(t, 50, cfg.DashboardMaxLaunches)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(42), cfg.MapSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_InvalidMaxLaunches(t *testing.T) {
	t.Setenv("DASHBOARD_MAX_LAUNCHES", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHBOARD_MAX_LAUNCHES")
}

func TestLoad_EmptyAddr(t *testing.T) {
	t.Setenv("DASHBOARD_ADDR", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHBOARD_ADDR")
}

func TestPaths(t *testing.T) {
	t.Setenv("DATA_DIR", "d")
	t.Setenv("OUTPUT_DIR", "o")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("d", "falcon9_launches_raw.csv"), cfg.RawAPIFile())
	assert.Equal(t, filepath.Join("d", "raw", "falcon9_web_scraped.csv"), cfg.ScrapedFile())
	assert.Equal(t, filepath.Join("d", "processed", "falcon_web_scraped_cleaned.csv"), cfg.CleanedFile())
	assert.Equal(t, filepath.Join("d", "falcon9_launches.csv"), cfg.DashboardFile())
	assert.Equal(t, filepath.Join("d", "processed", "falcon9_cleaned_for_eda.csv"), cfg.EDAFile())
	assert.Equal(t, filepath.Join("o", "figures"), cfg.FiguresDir())
	assert.Equal(t, filepath.Join("o", "reports"), cfg.ReportsDir())
}
