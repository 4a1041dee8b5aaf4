package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/models"
)

func testEvent(id string) *models.EventDetails {
	return &models.EventDetails{
		Event: models.Event{
			EventID:   id,
			Title:     "Concert",
			StartTime: "2024-05-01 20:00",
			Location:  "Madrid",
			UserID:    "user-1",
		},
	}
}

func eventDetailsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"event_id", "title", "description", "start_time", "opening_time",
		"minimum_age", "special_zone", "location", "latitude", "longitude",
		"user_id", "category_id", "created_at", "updated_at",
		"category_name", "image_url",
	})
}

func dateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"date_id", "date", "event_id", "created_at"})
}

func TestEventRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewEventRepository(sqlxDB)

	now := time.Now()
	category := "Music"
	imageURL := "http://localhost:9000/event-images/events/ev-1/cover.jpg"

	t.Run("event joined with category, image and dates", func(t *testing.T) {
		mock.ExpectQuery(`SELECT e\.event_id`).
			WithArgs("ev-1").
			WillReturnRows(eventDetailsRows().AddRow(
				"ev-1", "Concert", "A concert", "2024-05-01 20:00", "19:00",
				true, false, "Madrid", 40.4, -3.7,
				"user-1", "cat-1", now, now,
				category, imageURL,
			))
		mock.ExpectQuery(`SELECT \* FROM dates WHERE event_id = ANY`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(dateRows().
				AddRow("d-1", "2024-05-01", "ev-1", now).
				AddRow("d-2", "2024-05-02", "ev-1", now.Add(time.Second)))

		event, err := repo.GetByID(context.Background(), "ev-1")

		require.NoError(t, err)
		assert.Equal(t, "Concert", event.Title)
		require.NotNil(t, event.CategoryName)
		assert.Equal(t, "Music", *event.CategoryName)
		require.NotNil(t, event.ImageURL)
		assert.Equal(t, imageURL, *event.ImageURL)
		require.Len(t, event.Dates, 2)
		assert.Equal(t, "2024-05-01", event.Dates[0].Date)
		assert.Equal(t, "2024-05-02", event.Dates[1].Date)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id yields ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT e\.event_id`).
			WithArgs("missing").
			WillReturnRows(eventDetailsRows())

		_, err := repo.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventRepository_GetAll(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewEventRepository(sqlxDB)

	now := time.Now()

	mock.ExpectQuery(`SELECT e\.event_id`).
		WillReturnRows(eventDetailsRows().
			AddRow("ev-1", "Concert", "", "2024-05-01 20:00", "",
				false, false, "Madrid", 0.0, 0.0,
				"user-1", nil, now, now, nil, nil).
			AddRow("ev-2", "Festival", "", "2024-06-01 12:00", "",
				false, false, "Lisbon", 0.0, 0.0,
				"user-2", nil, now, now, nil, nil))
	mock.ExpectQuery(`SELECT \* FROM dates WHERE event_id = ANY`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(dateRows().AddRow("d-1", "2024-06-01", "ev-2", now))

	events, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)

	// Dates are grouped per event; events without dates keep an empty list.
	assert.Empty(t, events[0].Dates)
	require.Len(t, events[1].Dates, 1)
	assert.Equal(t, "2024-06-01", events[1].Dates[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewEventRepository(sqlxDB)

	mock.ExpectExec(`UPDATE events SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	event := testEvent("missing")
	err := repo.Update(context.Background(), &event.Event)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewEventRepository(sqlxDB)

	t.Run("dependents removed in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM attendees WHERE event_id`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM dates WHERE event_id`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM images WHERE event_id`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM events WHERE event_id`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), "ev-1")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown event rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM attendees WHERE event_id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM dates WHERE event_id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM images WHERE event_id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM events WHERE event_id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewEventRepository(sqlxDB)

	mock.ExpectExec(`INSERT INTO events`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	event := testEvent("")
	err := repo.Create(context.Background(), &event.Event)

	require.NoError(t, err)
	assert.NotEmpty(t, event.EventID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
