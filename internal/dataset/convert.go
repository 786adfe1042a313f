package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

func getStr(col string, rowIdx int, df *dataframe.DataFrame) string {
	if df == nil {
		return ""
	}

	if containsString(df.Names(), col) {
		val := df.Col(col).Elem(rowIdx).String()
		if val == "NaN" {
			return ""
		}
		return val
	}
	return ""
}

func getInt(col string, rowIdx int, df *dataframe.DataFrame) int {
	if df == nil {
		return 0
	}
	if idx := df.Names(); containsString(idx, col) {
		val, err := df.Col(col).Elem(rowIdx).Int()
		if err != nil {
			// Integer columns read from pandas exports often carry a
			// float representation ("1.0").
			f, ferr := strconv.ParseFloat(df.Col(col).Elem(rowIdx).String(), 64)
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return val
	}
	return 0
}

func getFloat(col string, rowIdx int, df *dataframe.DataFrame) float64 {
	if df == nil {
		return 0
	}
	if idx := df.Names(); containsString(idx, col) {
		val, err := strconv.ParseFloat(df.Col(col).Elem(rowIdx).String(), 64)
		if err != nil {
			return 0
		}
		return val
	}
	return 0
}

// ParseTimestamp accepts the timestamp formats present in the source CSV
// exports. The zero time marks an absent or unparseable value.
func ParseTimestamp(val string) time.Time {
	val = strings.TrimSpace(val)
	if val == "" || val == "NaN" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, val); err == nil {
			return t
		}
	}
	return time.Time{}
}

// OrderFactsFromDataFrame converts a validated dataframe into typed rows.
func OrderFactsFromDataFrame(df dataframe.DataFrame) []OrderFact {
	facts := make([]OrderFact, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		facts = append(facts, OrderFact{
			OrderID:             getStr("order_id", i, &df),
			OrderItemID:         getInt("order_item_id", i, &df),
			CustomerID:          getStr("customer_id", i, &df),
			CustomerCity:        getStr("customer_city", i, &df),
			CustomerState:       getStr("customer_state", i, &df),
			SellerCity:          getStr("seller_city", i, &df),
			ApprovedAt:          ParseTimestamp(getStr("order_approved_at", i, &df)),
			Price:               getFloat("price", i, &df),
			PaymentType:         getStr("payment_type", i, &df),
			PaymentValue:        getFloat("payment_value", i, &df),
			PaymentInstallments: getInt("payment_installments", i, &df),
			Product:             getStr("name_product", i, &df),
		})
	}
	return facts
}

// SatisfactionFactsFromDataFrame converts a validated dataframe into typed rows.
func SatisfactionFactsFromDataFrame(df dataframe.DataFrame) []SatisfactionFact {
	facts := make([]SatisfactionFact, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		facts = append(facts, SatisfactionFact{
			SellerCity:         getStr("seller_city", i, &df),
			ReviewScore:        getFloat("review_score", i, &df),
			CarrierHandoffDays: getFloat("time_deliver_tocarrier", i, &df),
			DeliveryStatus:     getStr("delivery_status", i, &df),
		})
	}
	return facts
}

// GeoPointsFromDataFrame converts a validated dataframe into typed rows.
func GeoPointsFromDataFrame(df dataframe.DataFrame) []GeoPoint {
	points := make([]GeoPoint, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		points = append(points, GeoPoint{
			Lat:   getFloat("geolocation_lat", i, &df),
			Lng:   getFloat("geolocation_lng", i, &df),
			State: getStr("customer_state", i, &df),
		})
	}
	return points
}
