package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hans4yu/commerce-insights/internal/logger"
)

const satisfactionCSV = `seller_city,review_score,time_deliver_tocarrier,delivery_status
sao paulo,5,1.5,On Time
ibitinga,2,12.0,Late
`

const geoCSV = `geolocation_lat,geolocation_lng,customer_state
-23.54,-46.63,SP
-22.90,-43.17,RJ
`

func writeTestData(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeTestData(t, map[string]string{
		OrderFactsFile:        orderCSV,
		SatisfactionFactsFile: satisfactionCSV,
		GeoFactsFile:          geoCSV,
	})

	store, err := Load(dir, EncodingUTF8, logger.New(logger.LevelError))
	require.NoError(t, err)

	assert.Len(t, store.Orders, 2)
	assert.Len(t, store.Satisfaction, 2)
	assert.Len(t, store.Geo, 2)
	assert.True(t, store.GeoAvailable)

	min, max := store.Bounds()
	assert.Equal(t, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), min)
	assert.Equal(t, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), max)
}

func TestLoadMissingOrderFile(t *testing.T) {
	dir := writeTestData(t, map[string]string{
		SatisfactionFactsFile: satisfactionCSV,
	})

	_, err := Load(dir, EncodingUTF8, logger.New(logger.LevelError))
	assert.Error(t, err)
}

func TestLoadDegradesWithoutGeoColumns(t *testing.T) {
	// Geo file without coordinates disables the geospatial section only.
	dir := writeTestData(t, map[string]string{
		OrderFactsFile:        orderCSV,
		SatisfactionFactsFile: satisfactionCSV,
		GeoFactsFile:          "customer_state,extra\nSP,1\n",
	})

	store, err := Load(dir, EncodingUTF8, logger.New(logger.LevelError))
	require.NoError(t, err)

	assert.False(t, store.GeoAvailable)
	assert.NotEmpty(t, store.GeoWarning)
	assert.Len(t, store.Orders, 2)
}

func TestLoadDegradesWithoutGeoFile(t *testing.T) {
	dir := writeTestData(t, map[string]string{
		OrderFactsFile:        orderCSV,
		SatisfactionFactsFile: satisfactionCSV,
	})

	store, err := Load(dir, EncodingUTF8, logger.New(logger.LevelError))
	require.NoError(t, err)
	assert.False(t, store.GeoAvailable)
}

func TestLoadSortsOrdersByApprovalTime(t *testing.T) {
	const unsorted = `order_id,order_item_id,customer_id,customer_city,customer_state,seller_city,order_approved_at,price,payment_type,payment_value,payment_installments,name_product
o2,1,c2,santos,SP,ibitinga,2023-02-01 08:00:00,19.9,boleto,19.9,1,health_beauty
o1,1,c1,campinas,SP,sao paulo,2023-01-02 11:07:15,49.9,credit_card,58.3,3,bed_bath_table
`
	dir := writeTestData(t, map[string]string{
		OrderFactsFile:        unsorted,
		SatisfactionFactsFile: satisfactionCSV,
		GeoFactsFile:          geoCSV,
	})

	store, err := Load(dir, EncodingUTF8, logger.New(logger.LevelError))
	require.NoError(t, err)

	require.Len(t, store.Orders, 2)
	assert.Equal(t, "o1", store.Orders[0].OrderID)
	assert.Equal(t, "o2", store.Orders[1].OrderID)
}
