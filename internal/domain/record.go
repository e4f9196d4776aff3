package domain

// CSV column names for the non-category fields. Category columns use
// Category.Key directly.
const (
	ColumnYear     = "year"
	ColumnImageRef = "Map Images Left"
)

// Record is one year of drought statistics: the map image reference and the
// share of the region in each SPI class. Shares is indexed by Category.
type Record struct {
	Year     int
	ImageRef string
	Shares   [NumCategories]float64
}

// Share returns the percentage of the region in the given category.
// Out-of-range categories report zero.
func (r Record) Share(c Category) float64 {
	if c < 0 || int(c) >= NumCategories {
		return 0
	}
	return r.Shares[c]
}
