package analytics

import (
	"sort"
	"time"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

// DailyOrders is one day of the rollup: how many distinct orders were
// approved that day and the summed line-item price.
type DailyOrders struct {
	Day        time.Time `json:"day"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

// OrdersSummary are the scalar totals across a rollup.
type OrdersSummary struct {
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DailyRollup groups order facts by the calendar day of their approval
// timestamp. Days with no orders are omitted, not zero-filled; callers that
// need a dense series must reindex. Output is ascending by day.
func DailyRollup(orders []dataset.OrderFact) []DailyOrders {
	type bucket struct {
		orders  map[string]struct{}
		revenue float64
	}

	buckets := make(map[time.Time]*bucket)
	for _, o := range orders {
		if o.ApprovedAt.IsZero() {
			continue
		}
		day := dateOf(o.ApprovedAt)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[day] = b
		}
		b.orders[o.OrderID] = struct{}{}
		b.revenue += o.Price
	}

	rollup := make([]DailyOrders, 0, len(buckets))
	for day, b := range buckets {
		rollup = append(rollup, DailyOrders{
			Day:        day,
			OrderCount: len(b.orders),
			Revenue:    b.revenue,
		})
	}
	sort.Slice(rollup, func(i, j int) bool { return rollup[i].Day.Before(rollup[j].Day) })

	return rollup
}

// RollupTotals sums the rollup columns.
func RollupTotals(rollup []DailyOrders) OrdersSummary {
	var summary OrdersSummary
	for _, d := range rollup {
		summary.TotalOrders += d.OrderCount
		summary.TotalRevenue += d.Revenue
	}
	return summary
}
