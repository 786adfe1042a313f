package analytics

import (
	"github.com/Hans4yu/commerce-insights/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// PaymentTypeDistribution counts order lines per payment type, descending.
func PaymentTypeDistribution(orders []dataset.OrderFact) []LabelCount {
	return countByLabel(orders, func(o dataset.OrderFact) string { return o.PaymentType })
}

// AvgInstallmentsBySellerCity averages payment installments per seller city,
// descending.
func AvgInstallmentsBySellerCity(orders []dataset.OrderFact) []CityMetric {
	installments := make(map[string][]float64)
	var seen []string
	for _, o := range orders {
		if _, ok := installments[o.SellerCity]; !ok {
			seen = append(seen, o.SellerCity)
		}
		installments[o.SellerCity] = append(installments[o.SellerCity], float64(o.PaymentInstallments))
	}

	ranking := make([]CityMetric, 0, len(seen))
	for _, city := range seen {
		ranking = append(ranking, CityMetric{City: city, Value: stat.Mean(installments[city], nil)})
	}
	sortCityMetricsDesc(ranking)

	return ranking
}
