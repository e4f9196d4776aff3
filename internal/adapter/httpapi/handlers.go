package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/narendra2074/drought-marathwada/internal/compare"
	"github.com/narendra2074/drought-marathwada/internal/domain"
	"github.com/narendra2074/drought-marathwada/internal/render"
	"github.com/narendra2074/drought-marathwada/internal/store"
)

// handleDashboard renders the full comparison page. Absent year parameters
// fall back to the historical defaults; explicit parameters must parse and
// must exist in the dataset.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	years := s.data.Years()
	if len(years) == 0 {
		http.Error(w, "no drought records loaded", http.StatusServiceUnavailable)
		return
	}

	defLeft, defRight := defaultSelections(years)
	left, err := selectionParam(r, "left", defLeft)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	right, err := selectionParam(r, "right", defRight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.comparer.Compare(r.Context(), left, right)
	switch {
	case errors.Is(err, store.ErrYearNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("comparison failed", "error", err)
		http.Error(w, "comparison failed", http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template failure can still become a 500
	// instead of a truncated page.
	var buf bytes.Buffer
	if err := render.DashboardPage(&buf, years, result); err != nil {
		s.logger.Error("dashboard render failed", "error", err)
		http.Error(w, "dashboard render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

// defaultSelections picks the years shown before the user chooses: the 1982
// drought against 1981 when the dataset has them, otherwise the earliest
// years on record.
func defaultSelections(years []int) (left, right compare.Selection) {
	left = compare.SelectYear(years[0])
	if slices.Contains(years, 1982) {
		left = compare.SelectYear(1982)
	}
	switch {
	case slices.Contains(years, 1981):
		right = compare.SelectYear(1981)
	case len(years) > 1:
		right = compare.SelectYear(years[1])
	default:
		right = compare.SelectYear(years[0])
	}
	return left, right
}

func selectionParam(r *http.Request, name string, fallback compare.Selection) (compare.Selection, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return compare.Selection{}, fmt.Errorf("parameter %q must be a year, got %q", name, raw)
	}
	return compare.SelectYear(year), nil
}

func (s *Server) handleYears(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]int{"years": s.data.Years()})
}

// compareResponse is the JSON body of a successful /api/compare call. Sides
// are flattened so clients can bind each panel without walking nesting.
type compareResponse struct {
	ImageLeft    domain.Resolution   `json:"image_left"`
	ImageRight   domain.Resolution   `json:"image_right"`
	ChartLeft    domain.Distribution `json:"chart_left"`
	ChartRight   domain.Distribution `json:"chart_right"`
	MetricsLeft  domain.MetricsGrid  `json:"metrics_left"`
	MetricsRight domain.MetricsGrid  `json:"metrics_right"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// handleCompare serves the JSON comparison. A missing side is not an error:
// the response is 204 and the client keeps its current view.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	leftRaw, rightRaw := q.Get("left"), q.Get("right")
	if leftRaw == "" || rightRaw == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	leftYear, err := strconv.Atoi(leftRaw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("parameter \"left\" must be a year, got %q", leftRaw),
		})
		return
	}
	rightYear, err := strconv.Atoi(rightRaw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("parameter \"right\" must be a year, got %q", rightRaw),
		})
		return
	}

	result, err := s.comparer.Compare(r.Context(), compare.SelectYear(leftYear), compare.SelectYear(rightYear))
	switch {
	case errors.Is(err, store.ErrYearNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	case err != nil:
		s.logger.Error("comparison failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "comparison failed"})
		return
	}

	writeJSON(w, http.StatusOK, compareResponse{
		ImageLeft:    result.Left.Image,
		ImageRight:   result.Right.Image,
		ChartLeft:    result.Left.Chart,
		ChartRight:   result.Right.Chart,
		MetricsLeft:  result.Left.Metrics,
		MetricsRight: result.Right.Metrics,
		GeneratedAt:  result.GeneratedAt,
	})
}

// handleChart serves one year's distribution as a PNG. The path segment may
// carry a .png suffix for clients that want an image-looking URL.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSuffix(r.PathValue("year"), ".png")
	year, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("chart year must be an integer, got %q", raw), http.StatusBadRequest)
		return
	}

	rec, err := s.data.Get(year)
	switch {
	case errors.Is(err, store.ErrYearNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("chart lookup failed", "year", year, "error", err)
		http.Error(w, "chart lookup failed", http.StatusInternalServerError)
		return
	}

	png, err := render.PieChartPNG(year, domain.BuildDistribution(rec))
	if err != nil {
		s.logger.Error("chart render failed", "year", year, "error", err)
		http.Error(w, "chart render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Write(png) //nolint:errcheck // client went away
}
