package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"eventhub/internal/models"
)

type attendeeRepository struct {
	db *sqlx.DB
}

func NewAttendeeRepository(db *sqlx.DB) AttendeeRepository {
	return &attendeeRepository{db: db}
}

func (r *attendeeRepository) GetByEventID(ctx context.Context, eventID string) ([]models.Attendee, error) {
	var attendees []models.Attendee

	query := `SELECT * FROM attendees WHERE event_id = $1`

	err := r.db.SelectContext(ctx, &attendees, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees by event: %w", err)
	}

	return attendees, nil
}

func (r *attendeeRepository) GetByUserID(ctx context.Context, userID string) ([]models.Attendee, error) {
	var attendees []models.Attendee

	query := `SELECT * FROM attendees WHERE user_id = $1`

	err := r.db.SelectContext(ctx, &attendees, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees by user: %w", err)
	}

	return attendees, nil
}

func (r *attendeeRepository) Create(ctx context.Context, attendee *models.Attendee) error {
	if attendee.AttendeeID == "" {
		attendee.AttendeeID = uuid.New().String()
	}

	query := `
		INSERT INTO attendees (attendee_id, date, date_id, event_id, user_id)
		VALUES (:attendee_id, :date, :date_id, :event_id, :user_id)
	`

	if _, err := r.db.NamedExecContext(ctx, query, attendee); err != nil {
		return fmt.Errorf("failed to create attendee: %w", err)
	}

	return nil
}

func (r *attendeeRepository) Update(ctx context.Context, attendeeID, date string) error {
	query := `UPDATE attendees SET date = $1 WHERE attendee_id = $2`

	result, err := r.db.ExecContext(ctx, query, date, attendeeID)
	if err != nil {
		return fmt.Errorf("failed to update attendee: %w", err)
	}

	return checkUpdated(result)
}

func (r *attendeeRepository) Delete(ctx context.Context, attendeeID string) error {
	query := `DELETE FROM attendees WHERE attendee_id = $1`

	result, err := r.db.ExecContext(ctx, query, attendeeID)
	if err != nil {
		return fmt.Errorf("failed to delete attendee: %w", err)
	}

	return checkUpdated(result)
}
