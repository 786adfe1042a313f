package analytics

// LabelCount is a generic label/row-count pair.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CityMetric is a seller-city/value pair for the city-level rankings.
type CityMetric struct {
	City  string  `json:"seller_city"`
	Value float64 `json:"value"`
}

// Top returns the first n rows of an already-sorted ranking.
func Top[T any](rows []T, n int) []T {
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]T, n)
	copy(out, rows[:n])
	return out
}

// Bottom returns the last n rows of a descending ranking, reversed so the
// smallest value comes first.
func Bottom[T any](rows []T, n int) []T {
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]T, 0, n)
	for i := len(rows) - 1; i >= len(rows)-n; i-- {
		out = append(out, rows[i])
	}
	return out
}
