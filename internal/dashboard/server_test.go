package dashboard

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
	"github.com/couchcryptid/launch-data-pipeline/internal/observability"
)

func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Launches: []domain.JoinedLaunch{
			{ID: "l1", LaunchSite: "Cape Canaveral", Success: true, Outcome: domain.OutcomeSuccess, PayloadMassKg: 500},
			{ID: "l2", LaunchSite: "Cape Canaveral", Success: true, Outcome: domain.OutcomeSuccess, PayloadMassKg: 4000},
			{ID: "l3", LaunchSite: "Cape Canaveral", Success: false, Outcome: domain.OutcomeFailure, PayloadMassKg: 9000},
			{ID: "l4", LaunchSite: "Vandenberg", Success: true, Outcome: domain.OutcomeSuccess, PayloadMassKg: 15600},
		},
		Launchpads: map[string]domain.Launchpad{},
	}
}

func testServer(data *domain.Dataset) *Server {
	return NewServer(data, ":0", time.Second,
		slog.New(slog.DiscardHandler), observability.NewMetricsForTesting())
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersAllPanels(t *testing.T) {
	rec := get(t, testServer(testDataset()), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Launch Success Count by Site")
	assert.Contains(t, body, "Success Ratio")
	assert.Contains(t, body, "Payload vs Launch Outcome")
	assert.Contains(t, body, "Cape Canaveral")
}

func TestIndexRangeFilter(t *testing.T) {
	rec := get(t, testServer(testDataset()), "/?min=10000&max=20000")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	// only the Vandenberg launch is in range
	assert.Contains(t, body, "Vandenberg")
	assert.Contains(t, body, "1 launches")
}

func TestIndexEmptyRange(t *testing.T) {
	rec := get(t, testServer(testDataset()), "/?min=100000&max=200000")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No data in selected range")
}

func TestIndexBadParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non numeric min", "/?min=abc"},
		{"non numeric max", "/?max=xyz"},
		{"inverted range", "/?min=9000&max=100"},
	}
	s := testServer(testDataset())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, testServer(testDataset()), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	rec := get(t, testServer(testDataset()), "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, testServer(&domain.Dataset{}), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, testServer(testDataset()), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
