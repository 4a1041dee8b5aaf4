package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"eventhub/internal/models"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepository{db: db}
}

const insertImageQuery = `
	INSERT INTO images (image_id, url, event_id, created_at)
	VALUES (:image_id, :url, :event_id, :created_at)
`

func prepareImage(image *models.Image) {
	if image.ImageID == "" {
		image.ImageID = uuid.New().String()
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	prepareImage(image)

	if _, err := r.db.NamedExecContext(ctx, insertImageQuery, image); err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	return nil
}

func (r *imageRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, image *models.Image) error {
	prepareImage(image)

	if _, err := tx.NamedExecContext(ctx, insertImageQuery, image); err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	return nil
}

func (r *imageRepository) GetByEventID(ctx context.Context, eventID string) ([]models.Image, error) {
	var images []models.Image

	query := `SELECT * FROM images WHERE event_id = $1 ORDER BY created_at`

	err := r.db.SelectContext(ctx, &images, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event images: %w", err)
	}

	return images, nil
}

func (r *imageRepository) DeleteByEventIDTx(ctx context.Context, tx *sqlx.Tx, eventID string) error {
	query := `DELETE FROM images WHERE event_id = $1`

	if _, err := tx.ExecContext(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to delete event images: %w", err)
	}

	return nil
}
