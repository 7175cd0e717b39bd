package usecase

import (
	"laundry-service/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Order OrderService
	Admin AdminService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, log),
		Order: NewOrderService(repo, log),
		Admin: NewAdminService(repo, log),
	}
}
