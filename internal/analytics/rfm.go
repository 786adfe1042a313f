package analytics

import (
	"sort"
	"time"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// RFMRow is one customer's recency/frequency/monetary segmentation row.
//
// Monetary sums payment_value across the customer's order lines. Payments are
// joined at line granularity in the source table, so a multi-item order's
// payment contributes once per line; the published numbers rely on this, so
// it is kept rather than deduplicated.
type RFMRow struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
}

// RFMAverages are the column means across all customers.
type RFMAverages struct {
	Recency   float64 `json:"avg_recency"`
	Frequency float64 `json:"avg_frequency"`
	Monetary  float64 `json:"avg_monetary"`
}

// RFMTable segments the given order facts by customer. The reference date is
// the maximum approval date across the input, so the most recently active
// customers have recency zero. Rows come out in first-seen customer order.
func RFMTable(orders []dataset.OrderFact) []RFMRow {
	type agg struct {
		latest   time.Time
		orderIDs map[string]struct{}
		monetary float64
	}

	var reference time.Time
	byCustomer := make(map[string]*agg)
	var seen []string

	for _, o := range orders {
		a, ok := byCustomer[o.CustomerID]
		if !ok {
			a = &agg{orderIDs: make(map[string]struct{})}
			byCustomer[o.CustomerID] = a
			seen = append(seen, o.CustomerID)
		}
		a.orderIDs[o.OrderID] = struct{}{}
		a.monetary += o.PaymentValue

		if o.ApprovedAt.IsZero() {
			continue
		}
		day := dateOf(o.ApprovedAt)
		if day.After(a.latest) {
			a.latest = day
		}
		if day.After(reference) {
			reference = day
		}
	}

	rows := make([]RFMRow, 0, len(seen))
	for _, id := range seen {
		a := byCustomer[id]
		recency := 0
		if !a.latest.IsZero() {
			recency = int(reference.Sub(a.latest).Hours() / 24)
		}
		rows = append(rows, RFMRow{
			CustomerID: id,
			Recency:    recency,
			Frequency:  len(a.orderIDs),
			Monetary:   a.monetary,
		})
	}
	return rows
}

// RFMMeans computes the column means across all customers.
func RFMMeans(rows []RFMRow) RFMAverages {
	if len(rows) == 0 {
		return RFMAverages{}
	}

	recency := make([]float64, len(rows))
	frequency := make([]float64, len(rows))
	monetary := make([]float64, len(rows))
	for i, r := range rows {
		recency[i] = float64(r.Recency)
		frequency[i] = float64(r.Frequency)
		monetary[i] = r.Monetary
	}

	return RFMAverages{
		Recency:   stat.Mean(recency, nil),
		Frequency: stat.Mean(frequency, nil),
		Monetary:  stat.Mean(monetary, nil),
	}
}

// TopByRecency returns the n customers with the highest recency, descending.
func TopByRecency(rows []RFMRow, n int) []RFMRow {
	return topBy(rows, n, func(a, b RFMRow) bool { return a.Recency > b.Recency })
}

// TopByFrequency returns the n customers with the most distinct orders.
func TopByFrequency(rows []RFMRow, n int) []RFMRow {
	return topBy(rows, n, func(a, b RFMRow) bool { return a.Frequency > b.Frequency })
}

// TopByMonetary returns the n customers with the highest monetary total.
func TopByMonetary(rows []RFMRow, n int) []RFMRow {
	return topBy(rows, n, func(a, b RFMRow) bool { return a.Monetary > b.Monetary })
}

func topBy(rows []RFMRow, n int, less func(a, b RFMRow) bool) []RFMRow {
	sorted := make([]RFMRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return Top(sorted, n)
}
