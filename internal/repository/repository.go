package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"eventhub/internal/models"
)

// ErrNotFound is returned when a query matches no rows. Handlers map it to
// HTTP 404.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile, password string) error
	FindByCredentials(ctx context.Context, username, password string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByIDAndUsername(ctx context.Context, userID, username string) (*models.User, error)
}

type EventRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	GetAll(ctx context.Context) ([]models.EventDetails, error)
	GetByUserID(ctx context.Context, userID string) ([]models.EventDetails, error)
	GetByID(ctx context.Context, eventID string) (*models.EventDetails, error)
	Create(ctx context.Context, event *models.Event) error
	CreateTx(ctx context.Context, tx *sqlx.Tx, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, event *models.Event) error
	Delete(ctx context.Context, eventID string) error
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, categoryID string) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	CreateTx(ctx context.Context, tx *sqlx.Tx, image *models.Image) error
	GetByEventID(ctx context.Context, eventID string) ([]models.Image, error)
	DeleteByEventIDTx(ctx context.Context, tx *sqlx.Tx, eventID string) error
}

type DateRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, date *models.EventDate) error
	ListByEventIDs(ctx context.Context, eventIDs []string) (map[string][]models.EventDate, error)
	DeleteByEventIDTx(ctx context.Context, tx *sqlx.Tx, eventID string) error
}

type AttendeeRepository interface {
	GetByEventID(ctx context.Context, eventID string) ([]models.Attendee, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Attendee, error)
	Create(ctx context.Context, attendee *models.Attendee) error
	Update(ctx context.Context, attendeeID, date string) error
	Delete(ctx context.Context, attendeeID string) error
}

type Repository struct {
	User     UserRepository
	Event    EventRepository
	Category CategoryRepository
	Image    ImageRepository
	Date     DateRepository
	Attendee AttendeeRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Event:    NewEventRepository(db),
		Category: NewCategoryRepository(db),
		Image:    NewImageRepository(db),
		Date:     NewDateRepository(db),
		Attendee: NewAttendeeRepository(db),
	}
}
