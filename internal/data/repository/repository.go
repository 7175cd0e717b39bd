package repository

import (
	"laundry-service/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	LaundryItem LaundryItemRepository
	Order       OrderRepository
}

func NewRepository(db database.Executor, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		LaundryItem: NewLaundryItemRepository(db, log),
		Order:       NewOrderRepository(db, log),
	}
}
