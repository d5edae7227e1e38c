package dashboard

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
)

const emptyRangeNote = "No data in selected range"

// buildPage assembles the dashboard page for a dataset already filtered to
// the selected payload mass range.
func buildPage(d *domain.Dataset, lo, hi float64) *components.Page {
	page := components.NewPage()
	page.PageTitle = "Falcon 9 Launch Dashboard"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		successPie(d, lo, hi),
		bestSitePie(d, lo, hi),
		payloadScatter(d, lo, hi),
	)
	return page
}

func rangeNote(lo, hi float64) string {
	return fmt.Sprintf("Payload range %.0f - %.0f kg", lo, hi)
}

// successPie charts successful launch counts per site. The subtitle doubles
// as the dashboard summary line.
func successPie(d *domain.Dataset, lo, hi float64) *charts.Pie {
	pie := charts.NewPie()

	sub := fmt.Sprintf("%s | %d launches | %.1f%% success | %d sites",
		rangeNote(lo, hi), len(d.Launches), d.SuccessRate(), len(d.Sites()))

	var data []opts.PieData
	for _, s := range d.StatsBySite() {
		if s.Successes > 0 {
			data = append(data, opts.PieData{Name: s.Site, Value: s.Successes})
		}
	}
	if len(data) == 0 {
		sub = emptyRangeNote
	}

	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Launch Success Count by Site",
		Subtitle: sub,
	}))
	pie.AddSeries("successes", data)
	return pie
}

// bestSitePie charts the success/failure split for the site with the highest
// success ratio in the filtered range.
func bestSitePie(d *domain.Dataset, lo, hi float64) *charts.Pie {
	pie := charts.NewPie()

	best, ok := domain.BestSite(d.StatsBySite())
	if !ok {
		pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
			Title:    "Highest Success Ratio Site",
			Subtitle: emptyRangeNote,
		}))
		return pie
	}

	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    fmt.Sprintf("%s - %.1f%% Success Ratio", best.Site, best.SuccessRatio),
		Subtitle: rangeNote(lo, hi),
	}))
	pie.AddSeries("outcomes", []opts.PieData{
		{Name: domain.OutcomeSuccess, Value: best.Successes},
		{Name: domain.OutcomeFailure, Value: best.Failures},
	})
	return pie
}

// payloadScatter charts payload mass against outcome, one series per site.
func payloadScatter(d *domain.Dataset, lo, hi float64) *charts.Scatter {
	sc := charts.NewScatter()

	sub := rangeNote(lo, hi)
	if len(d.Launches) == 0 {
		sub = emptyRangeNote
	}
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Payload vs Launch Outcome",
			Subtitle: sub,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Payload Mass (kg)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: []string{domain.OutcomeFailure, domain.OutcomeSuccess},
		}),
	)

	bySite := make(map[string][]opts.ScatterData)
	for _, l := range d.Launches {
		bySite[l.LaunchSite] = append(bySite[l.LaunchSite], opts.ScatterData{
			Value: []interface{}{l.PayloadMassKg, l.Outcome},
		})
	}
	for _, site := range d.Sites() {
		sc.AddSeries(site, bySite[site])
	}
	return sc
}
