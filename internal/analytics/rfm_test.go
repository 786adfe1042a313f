package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

func rfmRowFor(t *testing.T, rows []RFMRow, customerID string) RFMRow {
	t.Helper()
	for _, r := range rows {
		if r.CustomerID == customerID {
			return r
		}
	}
	t.Fatalf("no RFM row for customer %s", customerID)
	return RFMRow{}
}

func TestRFMRecency(t *testing.T) {
	// Reference date is the max approval date of the input: 2023-01-10.
	orders := []dataset.OrderFact{
		{OrderID: "1", CustomerID: "A", ApprovedAt: day("2023-01-02"), PaymentValue: 10},
		{OrderID: "2", CustomerID: "B", ApprovedAt: day("2023-01-10"), PaymentValue: 20},
	}

	rows := RFMTable(orders)
	require.Len(t, rows, 2)

	assert.Equal(t, 8, rfmRowFor(t, rows, "A").Recency)
	assert.Equal(t, 0, rfmRowFor(t, rows, "B").Recency)
}

func TestRFMRecencyNonNegativeAndZeroOnlyAtReference(t *testing.T) {
	orders := []dataset.OrderFact{
		{OrderID: "1", CustomerID: "A", ApprovedAt: day("2023-01-01")},
		{OrderID: "2", CustomerID: "B", ApprovedAt: day("2023-01-05")},
		{OrderID: "3", CustomerID: "C", ApprovedAt: day("2023-01-09")},
	}

	for _, r := range RFMTable(orders) {
		assert.GreaterOrEqual(t, r.Recency, 0)
		if r.CustomerID == "C" {
			assert.Zero(t, r.Recency)
		} else {
			assert.Positive(t, r.Recency)
		}
	}
}

func TestRFMFrequencyCountsDistinctOrders(t *testing.T) {
	orders := []dataset.OrderFact{
		{OrderID: "1", CustomerID: "A", ApprovedAt: day("2023-01-01")},
		{OrderID: "1", CustomerID: "A", ApprovedAt: day("2023-01-01")}, // second line, same order
		{OrderID: "2", CustomerID: "A", ApprovedAt: day("2023-01-02")},
	}

	rows := RFMTable(orders)
	assert.Equal(t, 2, rfmRowFor(t, rows, "A").Frequency)
}

func TestRFMMonetarySumsPerLine(t *testing.T) {
	// The source join duplicates an order's payment per line; monetary keeps
	// that behavior.
	orders := []dataset.OrderFact{
		{OrderID: "1", CustomerID: "A", ApprovedAt: day("2023-01-01"), PaymentValue: 50},
		{OrderID: "1", CustomerID: "A", ApprovedAt: day("2023-01-01"), PaymentValue: 50},
	}

	rows := RFMTable(orders)
	assert.Equal(t, 100.0, rfmRowFor(t, rows, "A").Monetary)
}

func TestRFMMeans(t *testing.T) {
	rows := []RFMRow{
		{CustomerID: "A", Recency: 8, Frequency: 1, Monetary: 10},
		{CustomerID: "B", Recency: 0, Frequency: 3, Monetary: 30},
	}

	avg := RFMMeans(rows)
	assert.Equal(t, 4.0, avg.Recency)
	assert.Equal(t, 2.0, avg.Frequency)
	assert.Equal(t, 20.0, avg.Monetary)
}

func TestRFMMeansEmpty(t *testing.T) {
	assert.Equal(t, RFMAverages{}, RFMMeans(nil))
}

func TestRFMTopRankings(t *testing.T) {
	rows := []RFMRow{
		{CustomerID: "A", Recency: 8, Frequency: 1, Monetary: 10},
		{CustomerID: "B", Recency: 0, Frequency: 3, Monetary: 30},
		{CustomerID: "C", Recency: 4, Frequency: 2, Monetary: 20},
	}

	assert.Equal(t, "A", TopByRecency(rows, 1)[0].CustomerID)
	assert.Equal(t, "B", TopByFrequency(rows, 1)[0].CustomerID)
	assert.Equal(t, "B", TopByMonetary(rows, 1)[0].CustomerID)

	top2 := TopByMonetary(rows, 2)
	require.Len(t, top2, 2)
	assert.Equal(t, "C", top2[1].CustomerID)
}
