// Package wrangle cleans the scraped launch table into the three tabular
// outputs the rest of the pipeline consumes. Cleaning is best-effort per
// field: malformed values degrade to a default sentinel instead of failing
// the row, and absent source columns are synthesized empty instead of
// failing the run.
package wrangle

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
	"github.com/couchcryptid/launch-data-pipeline/internal/observability"
	"github.com/couchcryptid/launch-data-pipeline/internal/table"
)

// Outputs names the three files a cleaning run writes.
type Outputs struct {
	Cleaned   string // full cleaned table
	Dashboard string // dashboard-ready copy
	EDA       string // reduced-column analysis subset
}

// Result summarizes one cleaning run for logging and tests.
type Result struct {
	ProcessedAt       time.Time
	RowsIn            int
	RowsOut           int
	DuplicatesRemoved int
	ValidDates        int
	SuccessRate       float64 // percent of rows with success_flag = 1
}

// Cleaner normalizes a raw scraped table.
type Cleaner struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewCleaner creates a Cleaner with the given observability.
func NewCleaner(logger *slog.Logger, metrics *observability.Metrics) *Cleaner {
	return &Cleaner{logger: logger, metrics: metrics}
}

// Run loads the raw CSV, cleans it in memory, and writes the three outputs.
func (c *Cleaner) Run(inputPath string, out Outputs) (*Result, error) {
	t, err := table.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("load raw data: %w", err)
	}
	c.logger.Info("raw data loaded", "path", inputPath, "rows", len(t.Rows), "columns", len(t.Header))

	res := c.Clean(t)

	if err := t.WriteFile(out.Cleaned); err != nil {
		return nil, fmt.Errorf("save cleaned data: %w", err)
	}
	if err := t.WriteFile(out.Dashboard); err != nil {
		return nil, fmt.Errorf("save dashboard data: %w", err)
	}
	if err := writeEDA(t, out.EDA); err != nil {
		return nil, fmt.Errorf("save eda data: %w", err)
	}
	c.logger.Info("cleaned data saved",
		"cleaned", out.Cleaned,
		"dashboard", out.Dashboard,
		"eda", out.EDA,
	)

	c.logQualityReport(t, res)
	return res, nil
}

// Clean normalizes the table in place: dedupe, trim, derived features,
// canonical column names. Every canonical column exists afterwards, possibly
// empty.
func (c *Cleaner) Clean(t *table.Table) *Result {
	res := &Result{ProcessedAt: domain.Now(), RowsIn: len(t.Rows)}

	t.TrimSpace()
	res.DuplicatesRemoved = t.Dedupe()
	if res.DuplicatesRemoved > 0 {
		c.logger.Info("removed duplicate rows", "count", res.DuplicatesRemoved)
	}

	c.derivePayloadMass(t)

	for i, name := range t.Header {
		t.Header[i] = domain.NormalizeHeader(name)
	}
	t.Rename(domain.ColumnRenames)
	for _, col := range domain.CanonicalColumns {
		t.EnsureColumn(col)
	}

	res.ValidDates = c.parseDates(t)
	c.coerceFlightNumbers(t)
	c.deriveSiteCodes(t)
	res.SuccessRate = c.deriveSuccessFlags(t)

	res.RowsOut = len(t.Rows)
	c.metrics.RowsCleaned.Add(float64(res.RowsOut))
	return res
}

// derivePayloadMass extracts payload_mass_kg from the free-text source
// column. Rows with no source column get the 0 default, keeping the invariant
// that the column is always populated.
func (c *Cleaner) derivePayloadMass(t *table.Table) {
	raw := t.Column(domain.SourcePayloadMass)
	masses := make([]string, len(t.Rows))
	for i := range t.Rows {
		var value string
		if raw != nil {
			value = raw[i]
		}
		mass := domain.ExtractPayloadMass(value)
		if value != "" && mass == 0 {
			c.metrics.ParseFailures.WithLabelValues("mass").Inc()
		}
		masses[i] = strconv.FormatFloat(mass, 'f', -1, 64)
	}
	t.SetColumn(domain.ColPayloadMassKg, masses)

	if raw == nil {
		c.logger.Warn("no payload mass column found, defaulting to 0",
			"column", domain.SourcePayloadMass)
	}
}

// parseDates normalizes the date column and derives launch_year. Returns the
// number of successfully parsed dates.
func (c *Cleaner) parseDates(t *table.Table) int {
	raw := t.Column(domain.ColDate)
	dates := make([]string, len(raw))
	years := make([]string, len(raw))
	valid := 0
	for i, value := range raw {
		parsed, ok := domain.ParseLaunchDate(value)
		if ok {
			valid++
		} else if value != "" {
			c.metrics.ParseFailures.WithLabelValues("date").Inc()
		}
		dates[i] = domain.FormatLaunchDate(parsed, ok)
		years[i] = domain.LaunchYear(parsed, ok)
	}
	t.SetColumn(domain.ColDate, dates)
	t.SetColumn(domain.ColLaunchYear, years)
	c.logger.Info("date column converted", "valid_dates", valid, "rows", len(raw))
	return valid
}

func (c *Cleaner) coerceFlightNumbers(t *table.Table) {
	raw := t.Column(domain.ColFlightNumber)
	coerced := make([]string, len(raw))
	for i, value := range raw {
		coerced[i] = domain.CoerceInt(value)
		if value != "" && coerced[i] == "" {
			c.metrics.ParseFailures.WithLabelValues("flight_number").Inc()
		}
	}
	t.SetColumn(domain.ColFlightNumber, coerced)
}

func (c *Cleaner) deriveSiteCodes(t *table.Table) {
	sites := t.Column(domain.ColLaunchSite)
	codes := make([]string, len(sites))
	for i, site := range sites {
		codes[i] = domain.LaunchSiteCode(site)
	}
	t.SetColumn(domain.ColLaunchSiteCode, codes)
}

func (c *Cleaner) deriveSuccessFlags(t *table.Table) float64 {
	outcomes := t.Column(domain.ColLaunchOutcome)
	flags := make([]string, len(outcomes))
	successes := 0
	for i, outcome := range outcomes {
		flag := domain.SuccessFlag(outcome)
		successes += flag
		flags[i] = strconv.Itoa(flag)
	}
	t.SetColumn(domain.ColSuccessFlag, flags)

	if len(outcomes) == 0 {
		return 0
	}
	return float64(successes) / float64(len(outcomes)) * 100
}

// logQualityReport mirrors the data-quality summary the pipeline has always
// emitted: totals, per-column missing counts, success rate.
func (c *Cleaner) logQualityReport(t *table.Table, res *Result) {
	c.logger.Info("data quality report",
		"processed_at", res.ProcessedAt.Format(time.RFC3339),
		"rows", res.RowsOut,
		"columns", len(t.Header),
		"duplicates_removed", res.DuplicatesRemoved,
		"valid_dates", res.ValidDates,
		"success_rate_pct", fmt.Sprintf("%.1f", res.SuccessRate),
	)
	for _, col := range t.Header {
		missing := 0
		for _, v := range t.Column(col) {
			if v == "" {
				missing++
			}
		}
		if missing > 0 {
			c.logger.Info("column has missing values",
				"column", col,
				"missing", missing,
				"pct", fmt.Sprintf("%.1f", float64(missing)/float64(res.RowsOut)*100),
			)
		}
	}
}

// EDARecord is one row of the reduced-column analysis output.
type EDARecord struct {
	FlightNumber   string  `csv:"flight_number"`
	Date           string  `csv:"date"`
	BoosterVersion string  `csv:"booster_version"`
	LaunchSite     string  `csv:"launch_site"`
	Payload        string  `csv:"payload"`
	PayloadMassKg  float64 `csv:"payload_mass_kg"`
	Orbit          string  `csv:"orbit"`
	Customer       string  `csv:"customer"`
	LaunchOutcome  string  `csv:"launch_outcome"`
	BoosterLanding string  `csv:"booster_landing"`
	LaunchYear     string  `csv:"launch_year"`
	LaunchSiteCode string  `csv:"launch_site_code"`
	SuccessFlag    int     `csv:"success_flag"`
}

// EDARecords projects a cleaned table onto the fixed analysis column set.
func EDARecords(t *table.Table) []EDARecord {
	col := func(name string) []string { return t.Column(name) }
	get := func(values []string, i int) string {
		if values == nil {
			return ""
		}
		return values[i]
	}

	flights := col(domain.ColFlightNumber)
	dates := col(domain.ColDate)
	boosters := col(domain.ColBoosterVersion)
	sites := col(domain.ColLaunchSite)
	payloads := col(domain.ColPayload)
	masses := col(domain.ColPayloadMassKg)
	orbits := col(domain.ColOrbit)
	customers := col(domain.ColCustomer)
	outcomes := col(domain.ColLaunchOutcome)
	landings := col(domain.ColBoosterLanding)
	years := col(domain.ColLaunchYear)
	codes := col(domain.ColLaunchSiteCode)
	flags := col(domain.ColSuccessFlag)

	records := make([]EDARecord, len(t.Rows))
	for i := range t.Rows {
		mass, _ := strconv.ParseFloat(get(masses, i), 64)
		flag, _ := strconv.Atoi(get(flags, i))
		records[i] = EDARecord{
			FlightNumber:   get(flights, i),
			Date:           get(dates, i),
			BoosterVersion: get(boosters, i),
			LaunchSite:     get(sites, i),
			Payload:        get(payloads, i),
			PayloadMassKg:  mass,
			Orbit:          get(orbits, i),
			Customer:       get(customers, i),
			LaunchOutcome:  get(outcomes, i),
			BoosterLanding: get(landings, i),
			LaunchYear:     get(years, i),
			LaunchSiteCode: get(codes, i),
			SuccessFlag:    flag,
		}
	}
	return records
}

func writeEDA(t *table.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	records := EDARecords(t)
	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("marshal eda records: %w", err)
	}
	return f.Close()
}
