package analytics

import (
	"sort"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// ReviewScoreBySellerCity sums review scores per seller city, descending.
func ReviewScoreBySellerCity(facts []dataset.SatisfactionFact) []CityMetric {
	sums := make(map[string]float64)
	var seen []string
	for _, f := range facts {
		if _, ok := sums[f.SellerCity]; !ok {
			seen = append(seen, f.SellerCity)
		}
		sums[f.SellerCity] += f.ReviewScore
	}

	ranking := make([]CityMetric, 0, len(seen))
	for _, city := range seen {
		ranking = append(ranking, CityMetric{City: city, Value: sums[city]})
	}
	sortCityMetricsDesc(ranking)

	return ranking
}

// AvgCarrierHandoffBySellerCity averages the days an order waited before the
// carrier handoff, per seller city, descending (slowest first).
func AvgCarrierHandoffBySellerCity(facts []dataset.SatisfactionFact) []CityMetric {
	days := make(map[string][]float64)
	var seen []string
	for _, f := range facts {
		if _, ok := days[f.SellerCity]; !ok {
			seen = append(seen, f.SellerCity)
		}
		days[f.SellerCity] = append(days[f.SellerCity], f.CarrierHandoffDays)
	}

	ranking := make([]CityMetric, 0, len(seen))
	for _, city := range seen {
		ranking = append(ranking, CityMetric{City: city, Value: stat.Mean(days[city], nil)})
	}
	sortCityMetricsDesc(ranking)

	return ranking
}

// DeliveryStatusCounts counts observations with the given delivery status per
// seller city, descending. Cities with no matching rows are absent, not
// zero-filled.
func DeliveryStatusCounts(facts []dataset.SatisfactionFact, status string) []CityMetric {
	counts := make(map[string]int)
	var seen []string
	for _, f := range facts {
		if f.DeliveryStatus != status {
			continue
		}
		if _, ok := counts[f.SellerCity]; !ok {
			seen = append(seen, f.SellerCity)
		}
		counts[f.SellerCity]++
	}

	ranking := make([]CityMetric, 0, len(seen))
	for _, city := range seen {
		ranking = append(ranking, CityMetric{City: city, Value: float64(counts[city])})
	}
	sortCityMetricsDesc(ranking)

	return ranking
}

func sortCityMetricsDesc(rows []CityMetric) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
}
