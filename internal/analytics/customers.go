package analytics

import (
	"sort"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

// RegionCount is a region (state or city) with its distinct-customer count.
type RegionCount struct {
	Region    string `json:"region"`
	Customers int    `json:"customer_count"`
}

// CustomersByState counts distinct customers per state, descending. A
// customer with multiple orders counts once.
func CustomersByState(orders []dataset.OrderFact) []RegionCount {
	return distinctCustomersBy(orders, func(o dataset.OrderFact) string { return o.CustomerState })
}

// CustomersByCity counts distinct customers per city, descending.
func CustomersByCity(orders []dataset.OrderFact) []RegionCount {
	return distinctCustomersBy(orders, func(o dataset.OrderFact) string { return o.CustomerCity })
}

func distinctCustomersBy(orders []dataset.OrderFact, key func(dataset.OrderFact) string) []RegionCount {
	customers := make(map[string]map[string]struct{})
	var seen []string
	for _, o := range orders {
		k := key(o)
		set, ok := customers[k]
		if !ok {
			set = make(map[string]struct{})
			customers[k] = set
			seen = append(seen, k)
		}
		set[o.CustomerID] = struct{}{}
	}

	counts := make([]RegionCount, 0, len(seen))
	for _, k := range seen {
		counts = append(counts, RegionCount{Region: k, Customers: len(customers[k])})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Customers > counts[j].Customers })

	return counts
}
