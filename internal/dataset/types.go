package dataset

import "time"

// OrderFact is one order line item joined with its customer, seller and
// payment attributes. ApprovedAt is the zero time when the order was never
// approved; such rows never enter time-based aggregates.
type OrderFact struct {
	OrderID             string    `db:"order_id" json:"order_id"`
	OrderItemID         int       `db:"order_item_id" json:"order_item_id"`
	CustomerID          string    `db:"customer_id" json:"customer_id"`
	CustomerCity        string    `db:"customer_city" json:"customer_city"`
	CustomerState       string    `db:"customer_state" json:"customer_state"`
	SellerCity          string    `db:"seller_city" json:"seller_city"`
	ApprovedAt          time.Time `db:"order_approved_at" json:"order_approved_at"`
	Price               float64   `db:"price" json:"price"`
	PaymentType         string    `db:"payment_type" json:"payment_type"`
	PaymentValue        float64   `db:"payment_value" json:"payment_value"`
	PaymentInstallments int       `db:"payment_installments" json:"payment_installments"`
	Product             string    `db:"name_product" json:"name_product"`
}

// SatisfactionFact is one seller-city delivery/review observation. It carries
// no timestamp, so it is never date-filtered.
type SatisfactionFact struct {
	SellerCity         string  `db:"seller_city" json:"seller_city"`
	ReviewScore        float64 `db:"review_score" json:"review_score"`
	CarrierHandoffDays float64 `db:"time_deliver_tocarrier" json:"time_deliver_tocarrier"`
	DeliveryStatus     string  `db:"delivery_status" json:"delivery_status"`
}

// Delivery status values observed in the satisfaction table.
const (
	DeliveryLate   = "Late"
	DeliveryOnTime = "On Time"
)

// GeoPoint is one customer geolocation sample.
type GeoPoint struct {
	Lat   float64 `db:"geolocation_lat" json:"geolocation_lat"`
	Lng   float64 `db:"geolocation_lng" json:"geolocation_lng"`
	State string  `db:"customer_state" json:"customer_state"`
}

// Store holds the raw fact tables for the lifetime of one session. It is
// read-only after load; every derived table is recomputed from it on demand.
type Store struct {
	Orders       []OrderFact
	Satisfaction []SatisfactionFact
	Geo          []GeoPoint

	// GeoAvailable is false when the geo file was absent or failed schema
	// validation; the geospatial section degrades, the rest is unaffected.
	GeoAvailable bool
	GeoWarning   string

	// Approved-at bounds across rows where the timestamp is present,
	// truncated to date. Zero when no row carries a timestamp.
	MinApprovedAt time.Time
	MaxApprovedAt time.Time
}

// Bounds returns the min/max approved-at dates of the order facts.
func (s *Store) Bounds() (time.Time, time.Time) {
	return s.MinApprovedAt, s.MaxApprovedAt
}

func (s *Store) computeBounds() {
	var min, max time.Time
	for _, o := range s.Orders {
		if o.ApprovedAt.IsZero() {
			continue
		}
		day := truncateToDate(o.ApprovedAt)
		if min.IsZero() || day.Before(min) {
			min = day
		}
		if max.IsZero() || day.After(max) {
			max = day
		}
	}
	s.MinApprovedAt = min
	s.MaxApprovedAt = max
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewStore assembles a store from already-materialized fact slices, e.g. rows
// read back from the warehouse.
func NewStore(orders []OrderFact, satisfaction []SatisfactionFact, geo []GeoPoint) *Store {
	s := &Store{
		Orders:       orders,
		Satisfaction: satisfaction,
		Geo:          geo,
		GeoAvailable: len(geo) > 0,
	}
	if !s.GeoAvailable {
		s.GeoWarning = "no geolocation rows available"
	}
	s.computeBounds()
	return s
}
