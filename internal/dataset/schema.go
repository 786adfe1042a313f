package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

type Table int

const (
	OrderFacts Table = iota
	SatisfactionFacts
	GeoFacts
)

const (
	OrderFactsFile        = "ordered_df.csv"
	SatisfactionFactsFile = "satisfaction_df.csv"
	GeoFactsFile          = "geo_result_df.csv"
)

var TableNames = map[Table]string{
	OrderFacts:        "Order Facts",
	SatisfactionFacts: "Satisfaction Facts",
	GeoFacts:          "Geo Facts",
}

var tableFiles = map[Table]string{
	OrderFacts:        OrderFactsFile,
	SatisfactionFacts: SatisfactionFactsFile,
	GeoFacts:          GeoFactsFile,
}

var requiredColumns = map[Table][]string{
	OrderFacts: {
		"order_id",
		"order_item_id",
		"customer_id",
		"customer_city",
		"customer_state",
		"seller_city",
		"order_approved_at",
		"price",
		"payment_type",
		"payment_value",
		"payment_installments",
		"name_product",
	},
	SatisfactionFacts: {
		"seller_city",
		"review_score",
		"time_deliver_tocarrier",
		"delivery_status",
	},
	GeoFacts: {
		"geolocation_lat",
		"geolocation_lng",
		"customer_state",
	},
}

// MissingColumnError reports a table whose file lacks an expected column.
type MissingColumnError struct {
	Table  Table
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table %s is missing required column %q", TableNames[e.Table], e.Column)
}

// ValidateSchema checks that every required column of the table is present in
// the dataframe. The first missing column is reported.
func ValidateSchema(df dataframe.DataFrame, t Table) error {
	cols, ok := requiredColumns[t]
	if !ok {
		return fmt.Errorf("unknown table: %v", t)
	}

	present := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		present[name] = true
	}

	for _, col := range cols {
		if !present[col] {
			return &MissingColumnError{Table: t, Column: col}
		}
	}
	return nil
}
