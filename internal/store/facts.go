package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

// FactStore persists the raw fact tables in the warehouse so the API can run
// with DATA_SOURCE=warehouse instead of re-reading the CSV exports.
type FactStore struct {
	db *sqlx.DB
}

const insertBatchSize = 500

// orderFactRow mirrors dataset.OrderFact with a nullable approval timestamp;
// unapproved orders are stored as NULL, not the zero time.
type orderFactRow struct {
	OrderID             string       `db:"order_id"`
	OrderItemID         int          `db:"order_item_id"`
	CustomerID          string       `db:"customer_id"`
	CustomerCity        string       `db:"customer_city"`
	CustomerState       string       `db:"customer_state"`
	SellerCity          string       `db:"seller_city"`
	ApprovedAt          sql.NullTime `db:"order_approved_at"`
	Price               float64      `db:"price"`
	PaymentType         string       `db:"payment_type"`
	PaymentValue        float64      `db:"payment_value"`
	PaymentInstallments int          `db:"payment_installments"`
	Product             string       `db:"name_product"`
}

func toOrderFactRow(f dataset.OrderFact) orderFactRow {
	return orderFactRow{
		OrderID:             f.OrderID,
		OrderItemID:         f.OrderItemID,
		CustomerID:          f.CustomerID,
		CustomerCity:        f.CustomerCity,
		CustomerState:       f.CustomerState,
		SellerCity:          f.SellerCity,
		ApprovedAt:          sql.NullTime{Time: f.ApprovedAt, Valid: !f.ApprovedAt.IsZero()},
		Price:               f.Price,
		PaymentType:         f.PaymentType,
		PaymentValue:        f.PaymentValue,
		PaymentInstallments: f.PaymentInstallments,
		Product:             f.Product,
	}
}

func (r orderFactRow) toFact() dataset.OrderFact {
	fact := dataset.OrderFact{
		OrderID:             r.OrderID,
		OrderItemID:         r.OrderItemID,
		CustomerID:          r.CustomerID,
		CustomerCity:        r.CustomerCity,
		CustomerState:       r.CustomerState,
		SellerCity:          r.SellerCity,
		Price:               r.Price,
		PaymentType:         r.PaymentType,
		PaymentValue:        r.PaymentValue,
		PaymentInstallments: r.PaymentInstallments,
		Product:             r.Product,
	}
	if r.ApprovedAt.Valid {
		fact.ApprovedAt = r.ApprovedAt.Time
	}
	return fact
}

func (fs *FactStore) InsertOrderFacts(ctx context.Context, facts []dataset.OrderFact) error {
	query := `INSERT INTO order_facts (
		order_id,
		order_item_id,
		customer_id,
		customer_city,
		customer_state,
		seller_city,
		order_approved_at,
		price,
		payment_type,
		payment_value,
		payment_installments,
		name_product
	) VALUES (
		:order_id,
		:order_item_id,
		:customer_id,
		:customer_city,
		:customer_state,
		:seller_city,
		:order_approved_at,
		:price,
		:payment_type,
		:payment_value,
		:payment_installments,
		:name_product
	)`

	rows := make([]orderFactRow, 0, len(facts))
	for _, f := range facts {
		rows = append(rows, toOrderFactRow(f))
	}

	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := fs.db.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return fmt.Errorf("failed to insert order facts: %w", err)
		}
	}
	return nil
}

func (fs *FactStore) InsertSatisfactionFacts(ctx context.Context, facts []dataset.SatisfactionFact) error {
	query := `INSERT INTO satisfaction_facts (
		seller_city,
		review_score,
		time_deliver_tocarrier,
		delivery_status
	) VALUES (
		:seller_city,
		:review_score,
		:time_deliver_tocarrier,
		:delivery_status
	)`

	for start := 0; start < len(facts); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(facts) {
			end = len(facts)
		}
		if _, err := fs.db.NamedExecContext(ctx, query, facts[start:end]); err != nil {
			return fmt.Errorf("failed to insert satisfaction facts: %w", err)
		}
	}
	return nil
}

func (fs *FactStore) InsertGeoPoints(ctx context.Context, points []dataset.GeoPoint) error {
	query := `INSERT INTO geo_points (
		geolocation_lat,
		geolocation_lng,
		customer_state
	) VALUES (
		:geolocation_lat,
		:geolocation_lng,
		:customer_state
	)`

	for start := 0; start < len(points); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(points) {
			end = len(points)
		}
		if _, err := fs.db.NamedExecContext(ctx, query, points[start:end]); err != nil {
			return fmt.Errorf("failed to insert geo points: %w", err)
		}
	}
	return nil
}

func (fs *FactStore) ListOrderFacts(ctx context.Context) ([]dataset.OrderFact, error) {
	query := `
	SELECT
		order_id,
		order_item_id,
		customer_id,
		customer_city,
		customer_state,
		seller_city,
		order_approved_at,
		price,
		payment_type,
		payment_value,
		payment_installments,
		name_product
	FROM order_facts
	ORDER BY order_approved_at NULLS FIRST;
	`

	var rows []orderFactRow
	if err := fs.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list order facts: %w", err)
	}

	facts := make([]dataset.OrderFact, 0, len(rows))
	for _, r := range rows {
		facts = append(facts, r.toFact())
	}
	return facts, nil
}

func (fs *FactStore) ListSatisfactionFacts(ctx context.Context) ([]dataset.SatisfactionFact, error) {
	query := `
	SELECT
		seller_city,
		review_score,
		time_deliver_tocarrier,
		delivery_status
	FROM satisfaction_facts;
	`

	var facts []dataset.SatisfactionFact
	if err := fs.db.SelectContext(ctx, &facts, query); err != nil {
		return nil, fmt.Errorf("failed to list satisfaction facts: %w", err)
	}
	return facts, nil
}

func (fs *FactStore) ListGeoPoints(ctx context.Context) ([]dataset.GeoPoint, error) {
	query := `
	SELECT
		geolocation_lat,
		geolocation_lng,
		customer_state
	FROM geo_points;
	`

	var points []dataset.GeoPoint
	if err := fs.db.SelectContext(ctx, &points, query); err != nil {
		return nil, fmt.Errorf("failed to list geo points: %w", err)
	}
	return points, nil
}
