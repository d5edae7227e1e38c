// Package config loads pipeline settings from a .env file and environment
// variables. Environment variables always take precedence over .env values.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all pipeline settings, shared by every stage of the binary.
type Config struct {
	// Sources.
	APIBaseURL  string
	ScrapeURL   string
	HTTPTimeout time.Duration

	// Filesystem layout. Stages exchange data only via these paths.
	DataDir   string
	OutputDir string
	MapFile   string

	// Dashboard.
	DashboardAddr        string
	DashboardMaxLaunches int
	ShutdownTimeout      time.Duration

	// Map placeholder proximity generation; 0 picks a random seed.
	MapSeed int64

	// Logging.
	LogLevel  string
	LogFormat string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables, applying defaults where unset.
func Load() (*Config, error) {
	// OK if the file doesn't exist; deployments use real env vars.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SPACEX_API_URL", "https://api.spacexdata.com/v4")
	v.SetDefault("SCRAPE_URL", "https://en.wikipedia.org/wiki/List_of_Falcon_9_and_Falcon_Heavy_launches")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("OUTPUT_DIR", "outputs")
	v.SetDefault("MAP_FILE", "spacex_launch_map.html")
	v.SetDefault("DASHBOARD_ADDR", ":8050")
	v.SetDefault("DASHBOARD_MAX_LAUNCHES", 1000)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("MAP_SEED", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := &Config{
		APIBaseURL:           v.GetString("SPACEX_API_URL"),
		ScrapeURL:            v.GetString("SCRAPE_URL"),
		HTTPTimeout:          v.GetDuration("HTTP_TIMEOUT"),
		DataDir:              v.GetString("DATA_DIR"),
		OutputDir:            v.GetString("OUTPUT_DIR"),
		MapFile:              v.GetString("MAP_FILE"),
		DashboardAddr:        v.GetString("DASHBOARD_ADDR"),
		DashboardMaxLaunches: v.GetInt("DASHBOARD_MAX_LAUNCHES"),
		ShutdownTimeout:      v.GetDuration("SHUTDOWN_TIMEOUT"),
		MapSeed:              v.GetInt64("MAP_SEED"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return errors.New("SPACEX_API_URL is required")
	}
	if c.ScrapeURL == "" {
		return errors.New("SCRAPE_URL is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid HTTP_TIMEOUT: %s", c.HTTPTimeout)
	}
	if c.DashboardAddr == "" {
		return errors.New("DASHBOARD_ADDR is required")
	}
	if c.DashboardMaxLaunches <= 0 {
		return fmt.Errorf("invalid DASHBOARD_MAX_LAUNCHES: %d", c.DashboardMaxLaunches)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %s", c.ShutdownTimeout)
	}
	return nil
}

// Fixed filesystem paths the stages agree on. The cleaner reads the scrape
// output and writes three files; the report stage reads the cleaned output.

// RawAPIFile is where the API fetch stage writes its CSV.
func (c *Config) RawAPIFile() string {
	return filepath.Join(c.DataDir, "falcon9_launches_raw.csv")
}

// ScrapedFile is where the scrape stage writes the raw wiki table.
func (c *Config) ScrapedFile() string {
	return filepath.Join(c.DataDir, "raw", "falcon9_web_scraped.csv")
}

// CleanedFile is the cleaner's full output.
func (c *Config) CleanedFile() string {
	return filepath.Join(c.DataDir, "processed", "falcon_web_scraped_cleaned.csv")
}

// DashboardFile is the cleaner's dashboard-ready copy.
func (c *Config) DashboardFile() string {
	return filepath.Join(c.DataDir, "falcon9_launches.csv")
}

// EDAFile is the cleaner's reduced-column analysis output.
func (c *Config) EDAFile() string {
	return filepath.Join(c.DataDir, "processed", "falcon9_cleaned_for_eda.csv")
}

// FiguresDir holds the report stage's chart images.
func (c *Config) FiguresDir() string {
	return filepath.Join(c.OutputDir, "figures")
}

// ReportsDir holds the report stage's CSV summaries.
func (c *Config) ReportsDir() string {
	return filepath.Join(c.OutputDir, "reports")
}
