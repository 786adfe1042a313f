package analytics

import "github.com/Hans4yu/commerce-insights/internal/dataset"

// BucketedPoint is a geolocation sample annotated with its rendering bucket.
type BucketedPoint struct {
	dataset.GeoPoint
	ColorGroup int `json:"color_group"`
}

// BucketByState assigns each point a color group: distinct states are
// enumerated in first-seen order and the index is taken modulo paletteSize.
// Deterministic for a given input ordering.
func BucketByState(points []dataset.GeoPoint, paletteSize int) []BucketedPoint {
	if paletteSize < 1 {
		paletteSize = 1
	}

	indexOf := make(map[string]int)
	bucketed := make([]BucketedPoint, 0, len(points))
	for _, p := range points {
		idx, ok := indexOf[p.State]
		if !ok {
			idx = len(indexOf)
			indexOf[p.State] = idx
		}
		bucketed = append(bucketed, BucketedPoint{GeoPoint: p, ColorGroup: idx % paletteSize})
	}
	return bucketed
}
