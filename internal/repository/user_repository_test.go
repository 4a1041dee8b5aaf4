package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eventhub/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "username", "password_hash", "role", "created_at",
	}).AddRow(user.UserID, user.Username, user.PasswordHash, user.Role, user.CreatedAt)
}

func TestUserRepository_FindByCredentials(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		UserID:       "user-1",
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now(),
	}

	t.Run("matching credentials return the user", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username`).
			WithArgs("alice").
			WillReturnRows(userRows(user))

		got, err := repo.FindByCredentials(ctx, "alice", password)

		require.NoError(t, err)
		assert.Equal(t, "user-1", got.UserID)
		assert.Equal(t, "admin", got.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password yields ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username`).
			WithArgs("alice").
			WillReturnRows(userRows(user))

		_, err := repo.FindByCredentials(ctx, "alice", "wrong-password")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown username yields ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username`).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.FindByCredentials(ctx, "nobody", password)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepository_FindByIDAndUsername(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	user := &models.User{
		UserID:       "user-1",
		Username:     "alice",
		PasswordHash: "hash",
		Role:         "organizer",
		CreatedAt:    time.Now(),
	}

	t.Run("matching pair returns the current role", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE user_id = \$1 AND username = \$2`).
			WithArgs("user-1", "alice").
			WillReturnRows(userRows(user))

		got, err := repo.FindByIDAndUsername(context.Background(), "user-1", "alice")

		require.NoError(t, err)
		assert.Equal(t, "organizer", got.Role)
	})

	t.Run("mismatched pair yields ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE user_id = \$1 AND username = \$2`).
			WithArgs("user-1", "mallory").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.FindByIDAndUsername(context.Background(), "user-1", "mallory")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepository_CreateWithProfile(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	t.Run("user and profile are committed together", func(t *testing.T) {
		user := &models.User{Username: "bob", Role: "user"}
		profile := &models.Profile{FirstName: "Bob", LastName: "Builder"}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO profiles`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateWithProfile(ctx, user, profile, "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.Equal(t, user.UserID, profile.UserID)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("profile failure rolls the user back", func(t *testing.T) {
		user := &models.User{Username: "bob", Role: "user"}
		profile := &models.Profile{FirstName: "Bob", LastName: "Builder"}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO profiles`).
			WillReturnError(errors.New(`null value in column "first_name"`))
		mock.ExpectRollback()

		err := repo.CreateWithProfile(ctx, user, profile, "password123")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username fails the transaction", func(t *testing.T) {
		user := &models.User{Username: "alice", Role: "user"}
		profile := &models.Profile{FirstName: "Alice", LastName: "Average"}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))
		mock.ExpectRollback()

		err := repo.CreateWithProfile(ctx, user, profile, "password123")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
