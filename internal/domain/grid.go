package domain

import "strconv"

// MetricCell is one tile of the 2×3 summary grid.
type MetricCell struct {
	Category  Category `json:"category"`
	Label     string   `json:"label"`
	Icon      string   `json:"icon"`
	Value     float64  `json:"value"`
	Display   string   `json:"display"` // Value formatted to one decimal place
	Color     string   `json:"color"`
	TextColor string   `json:"text_color"`
}

// MetricsGrid arranges the six category shares as two rows of three tiles,
// row-major: droughts first, then wet and near-normal.
type MetricsGrid struct {
	Rows [2][3]MetricCell `json:"rows"`
}

// BuildMetricsGrid derives the summary grid from a record. Every cell carries
// its own display attributes so renderers need no taxonomy knowledge.
func BuildMetricsGrid(rec Record) MetricsGrid {
	var g MetricsGrid
	for i, row := range GridRows() {
		for j, c := range row {
			v := rec.Share(c)
			g.Rows[i][j] = MetricCell{
				Category:  c,
				Label:     c.DisplayName(),
				Icon:      c.Icon(),
				Value:     v,
				Display:   strconv.FormatFloat(v, 'f', 1, 64),
				Color:     c.Color(),
				TextColor: c.TextColor(),
			}
		}
	}
	return g
}

// Cells returns the grid flattened row-major, matching canonical chart order.
func (g MetricsGrid) Cells() []MetricCell {
	cells := make([]MetricCell, 0, NumCategories)
	for _, row := range g.Rows {
		cells = append(cells, row[:]...)
	}
	return cells
}
