// Package report generates the static deliverables from the cleaned launch
// table: a descriptive statistics CSV, per-breakdown bar charts as PNG files,
// and a booster usage report.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
	"github.com/couchcryptid/launch-data-pipeline/internal/table"
)

// Output file names under the figures and reports directories.
const (
	SummaryFile        = "data_summary.csv"
	BoosterReportFile  = "booster_report.csv"
	LaunchesPerYearPNG = "launches_per_year.png"
	OutcomesPNG        = "launch_outcomes.png"
	BoosterUsagePNG    = "booster_usage.png"
)

// essentialColumns must exist for the charts; absent ones are synthesized
// empty so a partial input degrades to fewer charts instead of an error.
var essentialColumns = []string{
	domain.ColDate,
	domain.ColLaunchOutcome,
	domain.ColBoosterVersion,
}

// Generator renders reports and figures from a cleaned CSV.
type Generator struct {
	logger     *slog.Logger
	figuresDir string
	reportsDir string
}

func NewGenerator(logger *slog.Logger, figuresDir, reportsDir string) *Generator {
	return &Generator{logger: logger, figuresDir: figuresDir, reportsDir: reportsDir}
}

// Run loads the cleaned table and writes every report and chart the data
// supports. A column with no values skips its chart with a warning rather
// than failing the run.
func (g *Generator) Run(inputPath string) error {
	t, err := table.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("load cleaned data: %w", err)
	}
	g.logger.Info("cleaned data loaded", "path", inputPath, "rows", len(t.Rows), "columns", len(t.Header))

	for _, dir := range []string{g.figuresDir, g.reportsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	g.prepare(t)

	if err := g.writeSummary(t); err != nil {
		return err
	}
	if err := g.plotLaunchesPerYear(t); err != nil {
		return err
	}
	if err := g.plotOutcomes(t); err != nil {
		return err
	}
	if err := g.boosterUsage(t); err != nil {
		return err
	}

	g.logger.Info("all reports and figures generated")
	return nil
}

// prepare synthesizes missing essential columns and derives launch_year from
// date when the input lacks it.
func (g *Generator) prepare(t *table.Table) {
	for _, col := range essentialColumns {
		if !t.HasColumn(col) {
			g.logger.Warn("column missing, dependent charts may be skipped", "column", col)
			t.EnsureColumn(col)
		}
	}

	if t.HasColumn(domain.ColLaunchYear) {
		return
	}
	dates := t.Column(domain.ColDate)
	years := make([]string, len(dates))
	for i, v := range dates {
		parsed, ok := domain.ParseLaunchDate(v)
		years[i] = domain.LaunchYear(parsed, ok)
	}
	t.SetColumn(domain.ColLaunchYear, years)
}

func (g *Generator) writeSummary(t *table.Table) error {
	out := table.New([]string{"column", "count", "unique", "mean", "std", "min", "max"})
	for _, s := range Summarize(t) {
		row := []string{s.Column, strconv.Itoa(s.Count), strconv.Itoa(s.Unique), "", "", "", ""}
		if s.Numeric {
			row[3] = formatStat(s.Mean)
			row[4] = formatStat(s.Std)
			row[5] = formatStat(s.Min)
			row[6] = formatStat(s.Max)
		}
		out.Rows = append(out.Rows, row)
	}

	path := filepath.Join(g.reportsDir, SummaryFile)
	if err := out.WriteFile(path); err != nil {
		return fmt.Errorf("save summary report: %w", err)
	}
	g.logger.Info("summary report saved", "path", path)
	return nil
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func (g *Generator) plotLaunchesPerYear(t *table.Table) error {
	counts := countSorted(t.Column(domain.ColLaunchYear))
	if len(counts) == 0 {
		g.logger.Warn("skipping launches per year chart, no year data")
		return nil
	}

	path := filepath.Join(g.figuresDir, LaunchesPerYearPNG)
	if err := barChart("Falcon 9 Launches Per Year", "Launches", counts, path); err != nil {
		return fmt.Errorf("plot launches per year: %w", err)
	}
	g.logger.Info("figure saved", "path", path)
	return nil
}

func (g *Generator) plotOutcomes(t *table.Table) error {
	counts := countValues(t.Column(domain.ColLaunchOutcome))
	if len(counts) == 0 {
		g.logger.Warn("skipping outcomes chart, no outcome data")
		return nil
	}

	path := filepath.Join(g.figuresDir, OutcomesPNG)
	if err := barChart("Launch Outcomes", "Number of Launches", counts, path); err != nil {
		return fmt.Errorf("plot outcomes: %w", err)
	}
	g.logger.Info("figure saved", "path", path)
	return nil
}

// boosterUsage writes both the usage chart and the booster report CSV.
func (g *Generator) boosterUsage(t *table.Table) error {
	counts := countValues(t.Column(domain.ColBoosterVersion))
	if len(counts) == 0 {
		g.logger.Warn("skipping booster usage chart, no booster data")
		return nil
	}

	figPath := filepath.Join(g.figuresDir, BoosterUsagePNG)
	if err := barChart("Booster Version Usage Frequency", "Number of Launches", counts, figPath); err != nil {
		return fmt.Errorf("plot booster usage: %w", err)
	}
	g.logger.Info("figure saved", "path", figPath)

	out := table.New([]string{domain.ColBoosterVersion, "launch_count"})
	for _, c := range countSorted(t.Column(domain.ColBoosterVersion)) {
		out.Rows = append(out.Rows, []string{c.Value, strconv.Itoa(c.Count)})
	}
	reportPath := filepath.Join(g.reportsDir, BoosterReportFile)
	if err := out.WriteFile(reportPath); err != nil {
		return fmt.Errorf("save booster report: %w", err)
	}
	g.logger.Info("booster report saved", "path", reportPath)
	return nil
}

func barChart(title, ylabel string, counts []valueCount, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = c.Value
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = -0.8
	p.X.Tick.Label.YAlign = -0.4

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
