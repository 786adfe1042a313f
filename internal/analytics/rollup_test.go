package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

func TestDailyRollup(t *testing.T) {
	orders := []dataset.OrderFact{
		{OrderID: "1", CustomerID: "A", ApprovedAt: day("2023-01-01"), Price: 10},
		{OrderID: "2", CustomerID: "A", ApprovedAt: day("2023-01-02"), Price: 20},
		{OrderID: "3", CustomerID: "B", ApprovedAt: day("2023-01-02"), Price: 5},
	}

	rollup := DailyRollup(orders)
	require.Len(t, rollup, 2)

	assert.Equal(t, day("2023-01-01"), rollup[0].Day)
	assert.Equal(t, 1, rollup[0].OrderCount)
	assert.Equal(t, 10.0, rollup[0].Revenue)

	assert.Equal(t, day("2023-01-02"), rollup[1].Day)
	assert.Equal(t, 2, rollup[1].OrderCount)
	assert.Equal(t, 25.0, rollup[1].Revenue)

	summary := RollupTotals(rollup)
	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 35.0, summary.TotalRevenue)
}

func TestDailyRollupCountsDistinctOrders(t *testing.T) {
	// Two line items of the same order on the same day count once, but both
	// contribute revenue.
	orders := []dataset.OrderFact{
		{OrderID: "1", ApprovedAt: ts("2023-01-01 09:00:00"), Price: 10},
		{OrderID: "1", ApprovedAt: ts("2023-01-01 09:00:00"), Price: 15},
	}

	rollup := DailyRollup(orders)
	require.Len(t, rollup, 1)
	assert.Equal(t, 1, rollup[0].OrderCount)
	assert.Equal(t, 25.0, rollup[0].Revenue)
}

func TestDailyRollupSkipsUnapproved(t *testing.T) {
	orders := []dataset.OrderFact{
		{OrderID: "1", Price: 10},
	}
	assert.Empty(t, DailyRollup(orders))
}

func TestDailyRollupDaysStayInsideRange(t *testing.T) {
	orders := []dataset.OrderFact{
		{OrderID: "1", ApprovedAt: day("2023-01-01"), Price: 1},
		{OrderID: "2", ApprovedAt: day("2023-01-15"), Price: 1},
		{OrderID: "3", ApprovedAt: day("2023-02-10"), Price: 1},
	}

	r, err := NewRange(day("2023-01-01"), day("2023-01-31"), time.Time{}, time.Time{})
	require.NoError(t, err)

	for _, d := range DailyRollup(FilterOrders(orders, r)) {
		assert.False(t, d.Day.Before(r.Start))
		assert.False(t, d.Day.After(r.End))
	}
}
