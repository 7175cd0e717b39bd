package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusReceived   OrderStatus = "Received"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusReady      OrderStatus = "Ready"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every settable status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusReceived,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ParseOrderStatus matches s exactly against the fixed status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

type Order struct {
	ID                  int64           `db:"order_id"`
	UserID              int64           `db:"user_id"`
	OrderDate           time.Time       `db:"order_date"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	Status              OrderStatus     `db:"order_status"`
	DueDate             *time.Time      `db:"due_date"`
	SpecialInstructions string          `db:"special_instructions"`
}

// OrderWithOwner is an order row joined with the identity of its owner.
type OrderWithOwner struct {
	Order
	OwnerFirstName string `db:"first_name"`
	OwnerLastName  string `db:"last_name"`
	OwnerEmail     string `db:"email"`
}

// OrderItem stores the catalog price at order time; it is never re-derived
// from laundry_items.
type OrderItem struct {
	ID            int64           `db:"order_item_id"`
	OrderID       int64           `db:"order_id"`
	LaundryItemID int64           `db:"laundry_item_id"`
	ItemName      string          `db:"name"`
	Quantity      int             `db:"quantity"`
	PricePerUnit  decimal.Decimal `db:"price_per_unit"`
	TotalPrice    decimal.Decimal `db:"total_price"`
}
