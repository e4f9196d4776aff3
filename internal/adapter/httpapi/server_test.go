package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narendra2074/drought-marathwada/internal/adapter/httpapi"
	"github.com/narendra2074/drought-marathwada/internal/compare"
	"github.com/narendra2074/drought-marathwada/internal/domain"
	"github.com/narendra2074/drought-marathwada/internal/observability"
	"github.com/narendra2074/drought-marathwada/internal/render"
	"github.com/narendra2074/drought-marathwada/internal/store"
)

const stubPayload = "data:image/png;base64,QUJDREVG"

type stubDataset struct {
	records  map[int]domain.Record
	years    []int
	readyErr error
}

func (d *stubDataset) Years() []int { return d.years }

func (d *stubDataset) Get(year int) (domain.Record, error) {
	rec, ok := d.records[year]
	if !ok {
		return domain.Record{}, fmt.Errorf("year %d: %w", year, store.ErrYearNotFound)
	}
	return rec, nil
}

func (d *stubDataset) CheckReadiness(_ context.Context) error { return d.readyErr }

type staticResolver struct{}

func (staticResolver) Resolve(_ context.Context, _ string) domain.Resolution {
	return domain.Resolution{Payload: stubPayload, Source: domain.ImageSourceLive}
}

func testDataset(readyErr error) *stubDataset {
	records := map[int]domain.Record{
		1981: {Year: 1981, ImageRef: "https://maps.example.org/1981.jpg", Shares: [domain.NumCategories]float64{30, 20, 15, 5, 10, 20}},
		1982: {Year: 1982, ImageRef: "https://maps.example.org/1982.jpg", Shares: [domain.NumCategories]float64{2.5, 7.5, 10, 15, 25, 40}},
		1983: {Year: 1983, ImageRef: "https://maps.example.org/1983.jpg", Shares: [domain.NumCategories]float64{10, 10, 10, 20, 25, 25}},
	}
	return &stubDataset{records: records, years: []int{1981, 1982, 1983}, readyErr: readyErr}
}

func newTestServer(readyErr error) *httpapi.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := testDataset(readyErr)
	comparer := compare.New(data, staticResolver{}, logger, observability.NewMetricsForTesting())
	return httpapi.NewServer(":0", data, comparer, logger)
}

func get(t *testing.T, srv *httpapi.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(t, newTestServer(nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := get(t, newTestServer(nil), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := get(t, newTestServer(errors.New("dataset not loaded")), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "dataset not loaded", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(nil), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestDashboardDefaultYears(t *testing.T) {
	rec := get(t, newTestServer(nil), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	html := rec.Body.String()
	assert.Contains(t, html, render.PageTitle)
	assert.Contains(t, html, `<option value="1982" selected>`)
	assert.Contains(t, html, `<option value="1981" selected>`)
	assert.Equal(t, 2, strings.Count(html, stubPayload), "both map images should be embedded")
}

func TestDashboardExplicitYears(t *testing.T) {
	rec := get(t, newTestServer(nil), "/?left=1983&right=1982")

	assert.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, `<option value="1983" selected>`)
	assert.Contains(t, html, `<option value="1982" selected>`)
	assert.Contains(t, html, "1983 Distribution")
}

func TestDashboardUnknownYearIs404(t *testing.T) {
	rec := get(t, newTestServer(nil), "/?left=1999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "1999")
}

func TestDashboardBadYearIs400(t *testing.T) {
	rec := get(t, newTestServer(nil), "/?right=droughty")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "droughty")
}

func TestDashboardUnknownPathIs404(t *testing.T) {
	rec := get(t, newTestServer(nil), "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestYearsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(nil), "/api/years")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int{1981, 1982, 1983}, body["years"])
}

func TestCompareEndpoint(t *testing.T) {
	rec := get(t, newTestServer(nil), "/api/compare?left=1982&right=1981")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body struct {
		ImageLeft struct {
			Payload string `json:"payload"`
			Source  string `json:"source"`
		} `json:"image_left"`
		ChartLeft struct {
			Labels []string  `json:"labels"`
			Values []float64 `json:"values"`
		} `json:"chart_left"`
		ChartRight struct {
			Values []float64 `json:"values"`
		} `json:"chart_right"`
		MetricsLeft struct {
			Rows [][]struct {
				Label   string `json:"label"`
				Display string `json:"display"`
			} `json:"rows"`
		} `json:"metrics_left"`
		GeneratedAt time.Time `json:"generated_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, stubPayload, body.ImageLeft.Payload)
	assert.Equal(t, "live", body.ImageLeft.Source)
	assert.Equal(t, []string{"Extreme_Drought", "Severe_Drought", "Moderate_Drought", "Extremely_Wet", "Moderately_Wet", "Near_Normal"}, body.ChartLeft.Labels)
	assert.Equal(t, []float64{2.5, 7.5, 10, 15, 25, 40}, body.ChartLeft.Values)
	assert.Equal(t, []float64{30, 20, 15, 5, 10, 20}, body.ChartRight.Values)
	require.Len(t, body.MetricsLeft.Rows, 2)
	require.Len(t, body.MetricsLeft.Rows[0], 3)
	assert.Equal(t, "Extreme Drought", body.MetricsLeft.Rows[0][0].Label)
	assert.Equal(t, "2.5", body.MetricsLeft.Rows[0][0].Display)
	assert.False(t, body.GeneratedAt.IsZero())
}

func TestCompareMissingSideIs204(t *testing.T) {
	for _, target := range []string{
		"/api/compare",
		"/api/compare?left=1982",
		"/api/compare?right=1981",
		"/api/compare?left=&right=1981",
	} {
		rec := get(t, newTestServer(nil), target)

		assert.Equal(t, http.StatusNoContent, rec.Code, target)
		assert.Zero(t, rec.Body.Len(), target)
	}
}

func TestCompareBadYearIs400(t *testing.T) {
	rec := get(t, newTestServer(nil), "/api/compare?left=abc&right=1981")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "abc")
}

func TestCompareUnknownYearIs404(t *testing.T) {
	rec := get(t, newTestServer(nil), "/api/compare?left=1982&right=2050")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "2050")
}

func TestCompareWrongMethodIs405(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/compare?left=1982&right=1981", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChartServesPNG(t *testing.T) {
	for _, target := range []string{"/chart/1982.png", "/chart/1982"} {
		rec := get(t, newTestServer(nil), target)

		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"), target)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG\r\n\x1a\n"), target)
	}
}

func TestChartBadYearIs400(t *testing.T) {
	rec := get(t, newTestServer(nil), "/chart/latest.png")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChartUnknownYearIs404(t *testing.T) {
	rec := get(t, newTestServer(nil), "/chart/2050.png")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
