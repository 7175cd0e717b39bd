package usecase

import (
	"context"
	"time"

	"laundry-service/internal/data/entity"
	"laundry-service/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

type MockLaundryItemRepository struct {
	mock.Mock
}

func (m *MockLaundryItemRepository) FindAll(ctx context.Context) ([]*entity.LaundryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LaundryItem), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllWithOwner(ctx context.Context) ([]*entity.OrderWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.OrderWithOwner), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUser(ctx context.Context, orderID, userID int64) (*entity.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus, dueDate *time.Time) (int64, error) {
	args := m.Called(ctx, orderID, status, dueDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type mockRepos struct {
	user  *MockUserRepository
	items *MockLaundryItemRepository
	order *MockOrderRepository
}

func newMockRepos() (*mockRepos, *repository.Repository) {
	m := &mockRepos{
		user:  new(MockUserRepository),
		items: new(MockLaundryItemRepository),
		order: new(MockOrderRepository),
	}
	return m, &repository.Repository{
		User:        m.user,
		LaundryItem: m.items,
		Order:       m.order,
	}
}
