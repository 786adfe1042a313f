package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type IngestionHistoryStore struct {
	db *sqlx.DB
}

var (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// IngestionHistory records one ETL run per fact table.
type IngestionHistory struct {
	ID          int64     `db:"id" json:"id"`
	TableName   string    `db:"table_name" json:"table_name"`
	SourceFile  string    `db:"source_file" json:"source_file"`
	RowCount    int       `db:"row_count" json:"row_count"`
	Status      string    `db:"status" json:"status"`
	Detail      string    `db:"detail" json:"detail"`
	ProcessedAt time.Time `db:"processed_at" json:"processed_at"`
}

func (ih *IngestionHistoryStore) InsertIngestionHistory(ctx context.Context, history *IngestionHistory) error {
	query := `INSERT INTO ingestion_history (
		table_name,
		source_file,
		row_count,
		status,
		detail
	) VALUES (
		:table_name,
		:source_file,
		:row_count,
		:status,
		:detail
	) RETURNING id, processed_at`

	rows, err := ih.db.NamedQueryContext(ctx, query, history)
	if err != nil {
		return fmt.Errorf("failed to insert ingestion history: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&history.ID, &history.ProcessedAt); err != nil {
			return err
		}
	}
	return nil
}

func (ih *IngestionHistoryStore) GetLatest(ctx context.Context, limit int) ([]IngestionHistory, error) {
	query := `
	SELECT
		id,
		table_name,
		source_file,
		row_count,
		status,
		detail,
		processed_at
	FROM ingestion_history
	ORDER BY processed_at DESC
	LIMIT $1;
	`

	var history []IngestionHistory
	if err := ih.db.SelectContext(ctx, &history, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list ingestion history: %w", err)
	}
	return history, nil
}
