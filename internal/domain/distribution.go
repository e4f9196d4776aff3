package domain

// Distribution is the pie-chart projection of a record: parallel slices of
// labels, percentage values, and display colors. Index i of each slice
// describes the same category.
type Distribution struct {
	Labels []Category `json:"labels"`
	Values []float64  `json:"values"`
	Colors []string   `json:"colors"`
}

// BuildDistribution projects a record's category shares into chart inputs.
// Output order is the canonical chart order and does not depend on the values;
// zero shares are kept so the three slices always align with Categories().
func BuildDistribution(rec Record) Distribution {
	cats := Categories()
	d := Distribution{
		Labels: make([]Category, 0, len(cats)),
		Values: make([]float64, 0, len(cats)),
		Colors: make([]string, 0, len(cats)),
	}
	for _, c := range cats {
		d.Labels = append(d.Labels, c)
		d.Values = append(d.Values, rec.Share(c))
		d.Colors = append(d.Colors, c.Color())
	}
	return d
}
