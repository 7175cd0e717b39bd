package response

import (
	"time"

	"laundry-service/internal/data/entity"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type LaundryItemResponse struct {
	ID        int64  `json:"laundry_item_id"`
	Name      string `json:"name"`
	BasePrice string `json:"base_price"`
}

// OrderForm is what the order page needs to render or re-render itself.
type OrderForm struct {
	Items []LaundryItemResponse `json:"laundry_items"`
}

// LineResult is the outcome of inserting one order line.
type LineResult struct {
	LaundryItemID int64  `json:"laundry_item_id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	PricePerUnit  string `json:"price_per_unit"`
	TotalPrice    string `json:"total_price"`
	Inserted      bool   `json:"inserted"`
	Error         string `json:"error,omitempty"`
}

type PlaceOrderResponse struct {
	OrderID     int64        `json:"order_id"`
	TotalAmount string       `json:"total_amount"`
	Partial     bool         `json:"partial"`
	Lines       []LineResult `json:"lines"`
}

// PlaceOrderResult is what the handler renders after a submission. Form is
// set when the page should be redisplayed, Order once the header exists.
type PlaceOrderResult struct {
	Message  string
	Warnings []string
	Redirect string
	Form     *OrderForm
	Order    *PlaceOrderResponse
}

type OrderResponse struct {
	ID                  int64              `json:"order_id"`
	OrderDate           time.Time          `json:"order_date"`
	TotalAmount         string             `json:"total_amount"`
	Status              entity.OrderStatus `json:"order_status"`
	DueDate             *string            `json:"due_date"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
}

type AdminOrderResponse struct {
	OrderResponse
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type OrderItemResponse struct {
	ID            int64  `json:"order_item_id"`
	LaundryItemID int64  `json:"laundry_item_id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	PricePerUnit  string `json:"price_per_unit"`
	TotalPrice    string `json:"total_price"`
}

type OrderDetailResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}

type StatusUpdateResponse struct {
	OrderID int64              `json:"order_id"`
	Status  entity.OrderStatus `json:"order_status"`
	DueDate *string            `json:"due_date,omitempty"`
	Changed bool               `json:"changed"`
}

type StatusUpdateResult struct {
	Message  string
	Warnings []string
	Redirect string
	Update   *StatusUpdateResponse
}

// Helper converters

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func LaundryItemToResponse(item *entity.LaundryItem) LaundryItemResponse {
	return LaundryItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		BasePrice: Money(item.BasePrice),
	}
}

func LaundryItemsToForm(items []*entity.LaundryItem) OrderForm {
	form := OrderForm{Items: make([]LaundryItemResponse, 0, len(items))}
	for _, item := range items {
		form.Items = append(form.Items, LaundryItemToResponse(item))
	}
	return form
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:                  order.ID,
		OrderDate:           order.OrderDate,
		TotalAmount:         Money(order.TotalAmount),
		Status:              order.Status,
		DueDate:             FormatDate(order.DueDate),
		SpecialInstructions: order.SpecialInstructions,
	}
}

func AdminOrderToResponse(order *entity.OrderWithOwner) AdminOrderResponse {
	return AdminOrderResponse{
		OrderResponse: OrderToResponse(&order.Order),
		UserID:        order.UserID,
		FirstName:     order.OwnerFirstName,
		LastName:      order.OwnerLastName,
		Email:         order.OwnerEmail,
	}
}

func OrderItemToResponse(item *entity.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:            item.ID,
		LaundryItemID: item.LaundryItemID,
		Name:          item.ItemName,
		Quantity:      item.Quantity,
		PricePerUnit:  Money(item.PricePerUnit),
		TotalPrice:    Money(item.TotalPrice),
	}
}
