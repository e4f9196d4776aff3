// Package render produces the presentation artifacts of a comparison: the
// dashboard HTML page and standalone chart images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/narendra2074/drought-marathwada/internal/domain"
)

// PieChartPNG renders one year's category distribution as a PNG pie chart,
// for use outside the dashboard (exports, embedding). Zero shares have no arc
// and are left out; an all-zero distribution cannot be drawn and errors.
func PieChartPNG(year int, dist domain.Distribution) ([]byte, error) {
	values := make([]chart.Value, 0, len(dist.Values))
	for i, v := range dist.Values {
		if v <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: v,
			Label: fmt.Sprintf("%s %.1f%%", dist.Labels[i].DisplayName(), v),
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(strings.TrimPrefix(dist.Colors[i], "#")),
			},
		})
	}
	if len(values) == 0 {
		return nil, errors.New("all category shares are zero")
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("%d Distribution", year),
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}
