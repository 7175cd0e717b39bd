package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry-service/internal/data/entity"
	"laundry-service/pkg/database"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (int64, error)
	CreateItem(ctx context.Context, item *entity.OrderItem) (int64, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
	FindAllWithOwner(ctx context.Context) ([]*entity.OrderWithOwner, error)
	FindByIDForUser(ctx context.Context, orderID, userID int64) (*entity.Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)

	// Status workflow
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus, dueDate *time.Time) (int64, error)
	Exists(ctx context.Context, orderID int64) (bool, error)
}

type orderRepository struct {
	db  database.Executor
	log *zap.Logger
}

func NewOrderRepository(db database.Executor, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (int64, error) {
	query := `
		INSERT INTO orders (user_id, total_amount, order_status, special_instructions)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id
	`

	res, err := r.db.Commit(ctx, query,
		order.UserID,
		order.TotalAmount,
		order.Status,
		order.SpecialInstructions,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
			zap.String("total_amount", order.TotalAmount.String()),
		)
		return 0, fmt.Errorf("create order for user %d: %w", order.UserID, err)
	}

	order.ID = res.InsertedID
	return res.InsertedID, nil
}

func (r *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) (int64, error) {
	query := `
		INSERT INTO order_items (order_id, laundry_item_id, quantity, price_per_unit, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_item_id
	`

	res, err := r.db.Commit(ctx, query,
		item.OrderID,
		item.LaundryItemID,
		item.Quantity,
		item.PricePerUnit,
		item.TotalPrice,
	)
	if err != nil {
		r.log.Error("Failed to create order item",
			zap.Error(err),
			zap.Int64("order_id", item.OrderID),
			zap.Int64("laundry_item_id", item.LaundryItemID),
		)
		return 0, fmt.Errorf("create item %d for order %d: %w", item.LaundryItemID, item.OrderID, err)
	}

	item.ID = res.InsertedID
	return res.InsertedID, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	query := `
		SELECT order_id, user_id, order_date, total_amount, order_status,
		       due_date, special_instructions
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`

	var orders []*entity.Order
	err := r.db.FetchAll(ctx, func(row database.Scanner) error {
		var order entity.Order
		if err := row.Scan(
			&order.ID,
			&order.UserID,
			&order.OrderDate,
			&order.TotalAmount,
			&order.Status,
			&order.DueDate,
			&order.SpecialInstructions,
		); err != nil {
			return err
		}
		orders = append(orders, &order)
		return nil
	}, query, userID)

	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find orders by user ID %d: %w", userID, err)
	}

	return orders, nil
}

func (r *orderRepository) FindAllWithOwner(ctx context.Context) ([]*entity.OrderWithOwner, error) {
	query := `
		SELECT o.order_id, o.user_id, o.order_date, o.total_amount, o.order_status,
		       o.due_date, o.special_instructions,
		       u.first_name, u.last_name, u.email
		FROM orders o
		JOIN users u ON o.user_id = u.user_id
		ORDER BY o.order_date DESC
	`

	var orders []*entity.OrderWithOwner
	err := r.db.FetchAll(ctx, func(row database.Scanner) error {
		var order entity.OrderWithOwner
		if err := row.Scan(
			&order.ID,
			&order.UserID,
			&order.OrderDate,
			&order.TotalAmount,
			&order.Status,
			&order.DueDate,
			&order.SpecialInstructions,
			&order.OwnerFirstName,
			&order.OwnerLastName,
			&order.OwnerEmail,
		); err != nil {
			return err
		}
		orders = append(orders, &order)
		return nil
	}, query)

	if err != nil {
		r.log.Error("Failed to find all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindByIDForUser(ctx context.Context, orderID, userID int64) (*entity.Order, error) {
	query := `
		SELECT order_id, user_id, order_date, total_amount, order_status,
		       due_date, special_instructions
		FROM orders
		WHERE order_id = $1 AND user_id = $2
	`

	var order entity.Order
	err := r.db.FetchOne(ctx, []any{
		&order.ID,
		&order.UserID,
		&order.OrderDate,
		&order.TotalAmount,
		&order.Status,
		&order.DueDate,
		&order.SpecialInstructions,
	}, query, orderID, userID)

	if errors.Is(err, database.ErrNoRow) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", orderID, err)
	}

	return &order, nil
}

// FindItemsByOrderID reads the stored price snapshot, not the current catalog price.
func (r *orderRepository) FindItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT oi.order_item_id, oi.order_id, oi.laundry_item_id, li.name,
		       oi.quantity, oi.price_per_unit, oi.total_price
		FROM order_items oi
		JOIN laundry_items li ON oi.laundry_item_id = li.laundry_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.order_item_id
	`

	var items []*entity.OrderItem
	err := r.db.FetchAll(ctx, func(row database.Scanner) error {
		var item entity.OrderItem
		if err := row.Scan(
			&item.ID,
			&item.OrderID,
			&item.LaundryItemID,
			&item.ItemName,
			&item.Quantity,
			&item.PricePerUnit,
			&item.TotalPrice,
		); err != nil {
			return err
		}
		items = append(items, &item)
		return nil
	}, query, orderID)

	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find items for order %d: %w", orderID, err)
	}

	return items, nil
}

// UpdateStatus returns the number of rows whose values actually changed.
// A nil dueDate leaves the stored due date untouched.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus, dueDate *time.Time) (int64, error) {
	query := `
		UPDATE orders
		SET order_status = $1
		WHERE order_id = $2 AND order_status IS DISTINCT FROM $1
	`
	args := []any{status, orderID}

	if dueDate != nil {
		query = `
			UPDATE orders
			SET order_status = $1, due_date = $2
			WHERE order_id = $3
			  AND (order_status IS DISTINCT FROM $1 OR due_date IS DISTINCT FROM $2)
		`
		args = []any{status, *dueDate, orderID}
	}

	res, err := r.db.Commit(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("update order %d status to %s: %w", orderID, status, err)
	}

	return res.RowsAffected, nil
}

func (r *orderRepository) Exists(ctx context.Context, orderID int64) (bool, error) {
	query := `SELECT order_id FROM orders WHERE order_id = $1`

	var id int64
	err := r.db.FetchOne(ctx, []any{&id}, query, orderID)
	if errors.Is(err, database.ErrNoRow) {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check order existence",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return false, fmt.Errorf("check order %d exists: %w", orderID, err)
	}

	return true, nil
}
