package repository

import (
	"context"
	"errors"
	"testing"

	"laundry-service/internal/data/entity"
	"laundry-service/pkg/database"
	"laundry-service/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := zap.NewNop()
	return NewRepository(database.NewExecutor(db, log), log), mock
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	user := &entity.User{
		Username:     "jdoe",
		PasswordHash: "$2a$10$hash",
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		Phone:        "555-0100",
		Address:      "1 Main St",
		Role:         entity.RoleCustomer,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users .* RETURNING user_id`).
		WithArgs("jdoe", "$2a$10$hash", "John", "Doe", "john@example.com", "555-0100", "1 Main St", "customer").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	id, err := repo.User.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, int64(5), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	columns := []string{"user_id", "username", "password_hash", "first_name", "last_name", "email", "phone", "address", "role"}

	t.Run("Found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("admin@example.com").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "admin", "hash", "Ada", "Admin", "admin@example.com", "555", "HQ", "admin"))

		user, err := repo.User.FindByEmail(ctx, "admin@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, entity.RoleAdmin, user.Role)
		assert.Equal(t, "Ada", user.FirstName)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows(columns))

		user, err := repo.User.FindByEmail(ctx, "ghost@example.com")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DBError", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT .* FROM users`).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.User.FindByEmail(ctx, "a@example.com")

		assert.ErrorIs(t, err, utils.ErrStorage)
	})
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT user_id FROM users WHERE username = \$1 OR email = \$2`).
			WithArgs("jdoe", "other@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(3)))

		exists, err := repo.User.ExistsByUsernameOrEmail(ctx, "jdoe", "other@example.com")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Free", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT user_id FROM users`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		exists, err := repo.User.ExistsByUsernameOrEmail(ctx, "new", "new@example.com")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}
