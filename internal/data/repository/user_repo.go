package repository

import (
	"context"
	"errors"
	"fmt"

	"laundry-service/internal/data/entity"
	"laundry-service/pkg/database"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type userRepository struct {
	db  database.Executor
	log *zap.Logger
}

func NewUserRepository(db database.Executor, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record and returns its generated id
func (ur *userRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash, first_name, last_name,
		                   email, phone, address, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING user_id
	`

	res, err := ur.db.Commit(ctx, query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Address,
		user.Role,
	)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return 0, fmt.Errorf("create user %s: %w", user.Email, err)
	}

	user.ID = res.InsertedID
	return res.InsertedID, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT user_id, username, password_hash, first_name, last_name,
		       email, phone, address, role
		FROM users
		WHERE email = $1
	`

	var user entity.User
	err := ur.db.FetchOne(ctx, []any{
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.Address,
		&user.Role,
	}, query, email)

	if errors.Is(err, database.ErrNoRow) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// ExistsByUsernameOrEmail checks both unique columns in one lookup
func (ur *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT user_id FROM users WHERE username = $1 OR email = $2 LIMIT 1`

	var id int64
	err := ur.db.FetchOne(ctx, []any{&id}, query, username, email)
	if errors.Is(err, database.ErrNoRow) {
		return false, nil
	}
	if err != nil {
		ur.log.Error("Failed to check existing user",
			zap.Error(err),
			zap.String("username", username),
			zap.String("email", email),
		)
		return false, fmt.Errorf("check existing user %s: %w", username, err)
	}

	return true, nil
}
