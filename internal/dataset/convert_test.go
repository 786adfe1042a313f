package dataset

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2023-01-02 11:07:15", time.Date(2023, 1, 2, 11, 7, 15, 0, time.UTC)},
		{"2023-01-02", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"NaN", time.Time{}},
		{"02/01/2023", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimestamp(tt.in))
		})
	}
}

const orderCSV = `order_id,order_item_id,customer_id,customer_city,customer_state,seller_city,order_approved_at,price,payment_type,payment_value,payment_installments,name_product
o1,1,c1,campinas,SP,sao paulo,2023-01-02 11:07:15,49.9,credit_card,58.3,3,bed_bath_table
o2,1,c2,santos,SP,ibitinga,,19.9,boleto,19.9,1,health_beauty
`

func TestOrderFactsFromDataFrame(t *testing.T) {
	df := dataframe.ReadCSV(strings.NewReader(orderCSV), dataframe.WithLazyQuotes(true))
	require.NoError(t, df.Error())
	require.NoError(t, ValidateSchema(df, OrderFacts))

	facts := OrderFactsFromDataFrame(df)
	require.Len(t, facts, 2)

	first := facts[0]
	assert.Equal(t, "o1", first.OrderID)
	assert.Equal(t, 1, first.OrderItemID)
	assert.Equal(t, "c1", first.CustomerID)
	assert.Equal(t, "SP", first.CustomerState)
	assert.Equal(t, "sao paulo", first.SellerCity)
	assert.Equal(t, time.Date(2023, 1, 2, 11, 7, 15, 0, time.UTC), first.ApprovedAt)
	assert.InDelta(t, 49.9, first.Price, 1e-9)
	assert.Equal(t, "credit_card", first.PaymentType)
	assert.InDelta(t, 58.3, first.PaymentValue, 1e-9)
	assert.Equal(t, 3, first.PaymentInstallments)
	assert.Equal(t, "bed_bath_table", first.Product)

	// Unapproved order keeps the zero time.
	assert.True(t, facts[1].ApprovedAt.IsZero())
}

func TestGeoPointsFromDataFrame(t *testing.T) {
	df := dataframe.ReadCSV(strings.NewReader(
		"geolocation_lat,geolocation_lng,customer_state\n-23.54,-46.63,SP\n"))
	require.NoError(t, df.Error())

	points := GeoPointsFromDataFrame(df)
	require.Len(t, points, 1)
	assert.InDelta(t, -23.54, points[0].Lat, 1e-9)
	assert.InDelta(t, -46.63, points[0].Lng, 1e-9)
	assert.Equal(t, "SP", points[0].State)
}
