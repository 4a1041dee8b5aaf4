package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"eventhub/internal/models"
)

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	query := `SELECT * FROM categories ORDER BY name`

	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	var category models.Category

	query := `SELECT * FROM categories WHERE category_id = $1`

	err := r.db.GetContext(ctx, &category, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}

	query := `INSERT INTO categories (category_id, name) VALUES (:category_id, :name)`

	if _, err := r.db.NamedExecContext(ctx, query, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `UPDATE categories SET name = :name WHERE category_id = :category_id`

	result, err := r.db.NamedExecContext(ctx, query, category)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return checkUpdated(result)
}

func (r *categoryRepository) Delete(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1`

	result, err := r.db.ExecContext(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return checkUpdated(result)
}
