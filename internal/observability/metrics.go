package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges shared by the
// pipeline stages. Each stage binary registers one instance at startup.
type Metrics struct {
	RowsFetched prometheus.Counter
	RowsScraped prometheus.Counter
	RowsCleaned prometheus.Counter

	// ParseFailures counts lossy field coercions by field (mass, date,
	// flight_number). Coercion degrades to a default, it never fails a row.
	ParseFailures *prometheus.CounterVec

	FetchDuration *prometheus.HistogramVec // labels: resource

	// Orchestrator metrics.
	StageRuns     *prometheus.CounterVec   // labels: stage, outcome={success,failure}
	StageDuration *prometheus.HistogramVec // labels: stage

	// Dashboard metrics.
	DashboardRequests *prometheus.CounterVec // labels: route
	DashboardServing  prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsFetched,
		m.RowsScraped,
		m.RowsCleaned,
		m.ParseFailures,
		m.FetchDuration,
		m.StageRuns,
		m.StageDuration,
		m.DashboardRequests,
		m.DashboardServing,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering collectors, so
// parallel tests avoid "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_pipeline",
			Name:      "rows_fetched_total",
			Help:      "Launch records fetched from the REST API.",
		}),
		RowsScraped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_pipeline",
			Name:      "rows_scraped_total",
			Help:      "Rows extracted from the scraped launch table.",
		}),
		RowsCleaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_pipeline",
			Name:      "rows_cleaned_total",
			Help:      "Rows written by the cleaning stage.",
		}),
		ParseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_pipeline",
			Name:      "parse_failures_total",
			Help:      "Field values that degraded to a default during cleaning.",
		}, []string{"field"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "launch_pipeline",
			Name:      "fetch_duration_seconds",
			Help:      "HTTP fetch duration by resource.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"resource"}),
		StageRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_pipeline",
			Name:      "stage_runs_total",
			Help:      "Orchestrated stage executions by outcome.",
		}, []string{"stage", "outcome"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "launch_pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of each orchestrated stage.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"stage"}),
		DashboardRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_pipeline",
			Name:      "dashboard_requests_total",
			Help:      "Dashboard HTTP requests by route.",
		}, []string{"route"}),
		DashboardServing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "launch_pipeline",
			Name:      "dashboard_serving",
			Help:      "1 while the dashboard server is accepting requests.",
		}),
	}
}
