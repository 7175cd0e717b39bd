package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"laundry-service/internal/data/entity"
	"laundry-service/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"order_id", "user_id", "order_date", "total_amount", "order_status",
	"due_date", "special_instructions",
}

func TestOrderRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	order := &entity.Order{
		UserID:              2,
		TotalAmount:         decimal.RequireFromString("6.00"),
		Status:              entity.OrderStatusPending,
		SpecialInstructions: "no starch",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders .* RETURNING order_id`).
		WithArgs(int64(2), sqlmock.AnyArg(), "Pending", "no starch").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	id, err := repo.Order.Create(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, int64(11), order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateItem_Failure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO order_items`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := repo.Order.CreateItem(context.Background(), &entity.OrderItem{
		OrderID:       11,
		LaundryItemID: 1,
		Quantity:      3,
		PricePerUnit:  decimal.RequireFromString("2.00"),
		TotalPrice:    decimal.RequireFromString("6.00"),
	})

	assert.ErrorIs(t, err, utils.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()
	due := now.AddDate(0, 0, 3)

	mock.ExpectQuery(`SELECT .* FROM orders WHERE user_id = \$1 ORDER BY order_date DESC`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(int64(12), int64(2), now, "9.50", "Ready", due, "").
			AddRow(int64(11), int64(2), now.Add(-time.Hour), "6.00", "Pending", nil, "no starch"))

	orders, err := repo.Order.FindByUserID(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(12), orders[0].ID)
	assert.Equal(t, entity.OrderStatusReady, orders[0].Status)
	require.NotNil(t, orders[0].DueDate)
	assert.Nil(t, orders[1].DueDate)
	assert.Equal(t, "6.00", orders[1].TotalAmount.StringFixed(2))
}

func TestOrderRepository_FindByIDForUser_NotOwned(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .* FROM orders WHERE order_id = \$1 AND user_id = \$2`).
		WithArgs(int64(11), int64(3)).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	order, err := repo.Order.FindByIDForUser(context.Background(), 11, 3)

	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderRepository_FindItemsByOrderID_UsesStoredPrice(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Catalog price for Shirt is now 3.00; the line keeps the 2.00 it was sold at.
	mock.ExpectQuery(`SELECT oi.order_item_id, .*oi.price_per_unit.* FROM order_items oi`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{
			"order_item_id", "order_id", "laundry_item_id", "name", "quantity", "price_per_unit", "total_price",
		}).AddRow(int64(1), int64(11), int64(1), "Shirt", 3, "2.00", "6.00"))

	items, err := repo.Order.FindItemsByOrderID(context.Background(), 11)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2.00", items[0].PricePerUnit.StringFixed(2))
	assert.Equal(t, "6.00", items[0].TotalPrice.StringFixed(2))
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("StatusOnly", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders SET order_status = \$1 WHERE order_id = \$2 AND order_status IS DISTINCT FROM \$1`).
			WithArgs("Ready", int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repo.Order.UpdateStatus(ctx, 11, entity.OrderStatusReady, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WithDueDate", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders\s+SET order_status = \$1, due_date = \$2\s+WHERE order_id = \$3`).
			WithArgs("Ready", due, int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		affected, err := repo.Order.UpdateStatus(ctx, 11, entity.OrderStatusReady, &due)

		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestOrderRepository_Exists(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT order_id FROM orders WHERE order_id = \$1`).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}))

	exists, err := repo.Order.Exists(context.Background(), 999)

	require.NoError(t, err)
	assert.False(t, exists)
}
