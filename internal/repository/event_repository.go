package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"eventhub/internal/models"
)

type eventRepository struct {
	db    *sqlx.DB
	dates DateRepository
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db, dates: NewDateRepository(db)}
}

const eventDetailsQuery = `
	SELECT e.event_id, e.title, e.description, e.start_time, e.opening_time,
	       e.minimum_age, e.special_zone, e.location, e.latitude, e.longitude,
	       e.user_id, e.category_id, e.created_at, e.updated_at,
	       c.name AS category_name,
	       (SELECT i.url FROM images i WHERE i.event_id = e.event_id ORDER BY i.created_at LIMIT 1) AS image_url
	FROM events e
	LEFT JOIN categories c ON c.category_id = e.category_id
`

func (r *eventRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]models.EventDetails, error) {
	var events []models.EventDetails

	query := eventDetailsQuery + ` ORDER BY e.created_at`

	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	if err := r.attachDates(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) GetByUserID(ctx context.Context, userID string) ([]models.EventDetails, error) {
	var events []models.EventDetails

	query := eventDetailsQuery + ` WHERE e.user_id = $1 ORDER BY e.created_at`

	err := r.db.SelectContext(ctx, &events, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by user: %w", err)
	}

	if err := r.attachDates(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, eventID string) (*models.EventDetails, error) {
	var event models.EventDetails

	query := eventDetailsQuery + ` WHERE e.event_id = $1`

	err := r.db.GetContext(ctx, &event, query, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	events := []models.EventDetails{event}
	if err := r.attachDates(ctx, events); err != nil {
		return nil, err
	}

	return &events[0], nil
}

// attachDates materializes each event's occurrence dates as a structured
// list in a single follow-up query.
func (r *eventRepository) attachDates(ctx context.Context, events []models.EventDetails) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]string, 0, len(events))
	for i := range events {
		events[i].Dates = []models.EventDate{}
		ids = append(ids, events[i].EventID)
	}

	byEvent, err := r.dates.ListByEventIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range events {
		if dates, ok := byEvent[events[i].EventID]; ok {
			events[i].Dates = dates
		}
	}

	return nil
}

const insertEventQuery = `
	INSERT INTO events
	(event_id, title, description, start_time, opening_time, minimum_age,
	 special_zone, location, latitude, longitude, user_id, category_id,
	 created_at, updated_at)
	VALUES
	(:event_id, :title, :description, :start_time, :opening_time, :minimum_age,
	 :special_zone, :location, :latitude, :longitude, :user_id, :category_id,
	 :created_at, :updated_at)
`

func prepareInsert(event *models.Event) {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	prepareInsert(event)

	if _, err := r.db.NamedExecContext(ctx, insertEventQuery, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *eventRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, event *models.Event) error {
	prepareInsert(event)

	if _, err := tx.NamedExecContext(ctx, insertEventQuery, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

const updateEventQuery = `
	UPDATE events SET
		title = :title,
		description = :description,
		start_time = :start_time,
		opening_time = :opening_time,
		minimum_age = :minimum_age,
		special_zone = :special_zone,
		location = :location,
		latitude = :latitude,
		longitude = :longitude,
		category_id = :category_id,
		updated_at = :updated_at
	WHERE event_id = :event_id
`

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, updateEventQuery, event)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return checkUpdated(result)
}

func (r *eventRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, event *models.Event) error {
	event.UpdatedAt = time.Now()

	result, err := tx.NamedExecContext(ctx, updateEventQuery, event)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return checkUpdated(result)
}

func checkUpdated(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the event together with its attendees, dates and images in
// one transaction.
func (r *eventRepository) Delete(ctx context.Context, eventID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	dependents := []string{
		`DELETE FROM attendees WHERE event_id = $1`,
		`DELETE FROM dates WHERE event_id = $1`,
		`DELETE FROM images WHERE event_id = $1`,
	}

	for _, query := range dependents {
		if _, err := tx.ExecContext(ctx, query, eventID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete event dependents: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE event_id = $1`, eventID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event delete: %w", err)
	}

	return nil
}
