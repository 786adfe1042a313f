package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

type Storage struct {
	Facts interface {
		InsertOrderFacts(ctx context.Context, facts []dataset.OrderFact) error
		InsertSatisfactionFacts(ctx context.Context, facts []dataset.SatisfactionFact) error
		InsertGeoPoints(ctx context.Context, points []dataset.GeoPoint) error
		ListOrderFacts(ctx context.Context) ([]dataset.OrderFact, error)
		ListSatisfactionFacts(ctx context.Context) ([]dataset.SatisfactionFact, error)
		ListGeoPoints(ctx context.Context) ([]dataset.GeoPoint, error)
	}

	IngestionHistory interface {
		InsertIngestionHistory(ctx context.Context, history *IngestionHistory) error
		GetLatest(ctx context.Context, limit int) ([]IngestionHistory, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Facts:            &FactStore{db: db},
		IngestionHistory: &IngestionHistoryStore{db: db},
	}
}
