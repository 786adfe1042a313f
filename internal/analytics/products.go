package analytics

import (
	"sort"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

// ProductVolume ranks a product label by summed line sequence numbers. The
// dataset carries no unit-count field, so the line sequence number stands in
// as a sales-volume proxy.
type ProductVolume struct {
	Product  string `json:"name_product"`
	Quantity int    `json:"quantity"`
}

// ProductVolumeRanking groups order facts by product label, descending by the
// summed proxy. Ties keep first-seen order.
func ProductVolumeRanking(orders []dataset.OrderFact) []ProductVolume {
	totals := make(map[string]int)
	var seen []string
	for _, o := range orders {
		if _, ok := totals[o.Product]; !ok {
			seen = append(seen, o.Product)
		}
		totals[o.Product] += o.OrderItemID
	}

	ranking := make([]ProductVolume, 0, len(seen))
	for _, p := range seen {
		ranking = append(ranking, ProductVolume{Product: p, Quantity: totals[p]})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Quantity > ranking[j].Quantity })

	return ranking
}

// ProductOrderCounts counts order lines per product label, descending. Unlike
// ProductVolumeRanking this is a plain row count, not the summed proxy.
func ProductOrderCounts(orders []dataset.OrderFact) []LabelCount {
	return countByLabel(orders, func(o dataset.OrderFact) string { return o.Product })
}

// OrdersBySellerCity counts order lines per seller city, descending.
func OrdersBySellerCity(orders []dataset.OrderFact) []LabelCount {
	return countByLabel(orders, func(o dataset.OrderFact) string { return o.SellerCity })
}

func countByLabel(orders []dataset.OrderFact, key func(dataset.OrderFact) string) []LabelCount {
	counts := make(map[string]int)
	var seen []string
	for _, o := range orders {
		k := key(o)
		if _, ok := counts[k]; !ok {
			seen = append(seen, k)
		}
		counts[k]++
	}

	ranking := make([]LabelCount, 0, len(seen))
	for _, k := range seen {
		ranking = append(ranking, LabelCount{Label: k, Count: counts[k]})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Count > ranking[j].Count })

	return ranking
}
