package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

func TestReviewScoreBySellerCity(t *testing.T) {
	facts := []dataset.SatisfactionFact{
		{SellerCity: "sao paulo", ReviewScore: 5},
		{SellerCity: "sao paulo", ReviewScore: 4},
		{SellerCity: "ibitinga", ReviewScore: 3},
	}

	ranking := ReviewScoreBySellerCity(facts)
	require.Len(t, ranking, 2)
	assert.Equal(t, CityMetric{City: "sao paulo", Value: 9}, ranking[0])
	assert.Equal(t, CityMetric{City: "ibitinga", Value: 3}, ranking[1])
}

func TestAvgCarrierHandoffBySellerCity(t *testing.T) {
	facts := []dataset.SatisfactionFact{
		{SellerCity: "porto ferreira", CarrierHandoffDays: 30},
		{SellerCity: "porto ferreira", CarrierHandoffDays: 20},
		{SellerCity: "bom jardim", CarrierHandoffDays: 0.4},
	}

	ranking := AvgCarrierHandoffBySellerCity(facts)
	require.Len(t, ranking, 2)
	assert.Equal(t, "porto ferreira", ranking[0].City)
	assert.InDelta(t, 25.0, ranking[0].Value, 1e-9)
	assert.Equal(t, "bom jardim", ranking[1].City)
}

func TestDeliveryStatusCounts(t *testing.T) {
	facts := []dataset.SatisfactionFact{
		{SellerCity: "sao paulo", DeliveryStatus: dataset.DeliveryLate},
		{SellerCity: "sao paulo", DeliveryStatus: dataset.DeliveryLate},
		{SellerCity: "sao paulo", DeliveryStatus: dataset.DeliveryOnTime},
		{SellerCity: "santo andre", DeliveryStatus: dataset.DeliveryOnTime},
	}

	late := DeliveryStatusCounts(facts, dataset.DeliveryLate)
	require.Len(t, late, 1)
	assert.Equal(t, CityMetric{City: "sao paulo", Value: 2}, late[0])

	onTime := DeliveryStatusCounts(facts, dataset.DeliveryOnTime)
	require.Len(t, onTime, 2)
}

func TestDeliveryStatusCountsEmptySubset(t *testing.T) {
	facts := []dataset.SatisfactionFact{
		{SellerCity: "sao paulo", DeliveryStatus: dataset.DeliveryOnTime},
	}
	assert.Empty(t, DeliveryStatusCounts(facts, dataset.DeliveryLate))
}
