package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"eventhub/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile inserts the user and its profile in a single
// transaction. Either both rows land or neither does.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now()

	profile.ProfileID = uuid.New().String()
	profile.UserID = user.UserID

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	userQuery := `
		INSERT INTO users (user_id, username, password_hash, role, created_at)
		VALUES (:user_id, :username, :password_hash, :role, :created_at)
	`

	if _, err := tx.NamedExecContext(ctx, userQuery, user); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create user: %w", err)
	}

	profileQuery := `
		INSERT INTO profiles (profile_id, first_name, last_name, phone, user_id)
		VALUES (:profile_id, :first_name, :last_name, :phone, :user_id)
	`

	if _, err := tx.NamedExecContext(ctx, profileQuery, profile); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}

	return nil
}

func (r *userRepository) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrNotFound
	}

	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

// FindByIDAndUsername backs the refresh flow: the role is re-read from the
// database rather than trusted from the old token.
func (r *userRepository) FindByIDAndUsername(ctx context.Context, userID, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1 AND username = $2`

	err := r.db.GetContext(ctx, &user, query, userID, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id and username: %w", err)
	}

	return &user, nil
}
