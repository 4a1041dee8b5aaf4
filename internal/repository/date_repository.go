package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"eventhub/internal/models"
)

type dateRepository struct {
	db *sqlx.DB
}

func NewDateRepository(db *sqlx.DB) DateRepository {
	return &dateRepository{db: db}
}

func (r *dateRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, date *models.EventDate) error {
	if date.DateID == "" {
		date.DateID = uuid.New().String()
	}
	if date.CreatedAt.IsZero() {
		date.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO dates (date_id, date, event_id, created_at)
		VALUES (:date_id, :date, :event_id, :created_at)
	`

	if _, err := tx.NamedExecContext(ctx, query, date); err != nil {
		return fmt.Errorf("failed to create date: %w", err)
	}

	return nil
}

// ListByEventIDs returns the occurrence dates of every requested event,
// grouped by event id and ordered by creation.
func (r *dateRepository) ListByEventIDs(ctx context.Context, eventIDs []string) (map[string][]models.EventDate, error) {
	var dates []models.EventDate

	query := `SELECT * FROM dates WHERE event_id = ANY($1) ORDER BY created_at`

	err := r.db.SelectContext(ctx, &dates, query, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list dates: %w", err)
	}

	byEvent := make(map[string][]models.EventDate, len(eventIDs))
	for _, date := range dates {
		byEvent[date.EventID] = append(byEvent[date.EventID], date)
	}

	return byEvent, nil
}

func (r *dateRepository) DeleteByEventIDTx(ctx context.Context, tx *sqlx.Tx, eventID string) error {
	query := `DELETE FROM dates WHERE event_id = $1`

	if _, err := tx.ExecContext(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to delete event dates: %w", err)
	}

	return nil
}
