package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"laundry-service/internal/data/entity"
	"laundry-service/internal/data/repository"
	"laundry-service/internal/dto/request"
	"laundry-service/internal/dto/response"
	"laundry-service/pkg/metrics"
	"laundry-service/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	RedirectMyOrders = "/my_orders"

	msgCatalogUnavailable = "Could not load laundry items. Please try again later."
	msgNoValidItems       = "Please select at least one item with a valid quantity > 0."
	msgOrderHeaderFailed  = "Failed to create order record. Please try again."
	msgHistoryUnavailable = "Could not retrieve order history."
	msgOrderNotFound      = "Order not found."
)

type OrderService interface {
	PlaceOrderForm(ctx context.Context) (*response.OrderForm, []string)
	PlaceOrder(ctx context.Context, userID int64, req *request.PlaceOrderRequest) (*response.PlaceOrderResult, error)
	GetMyOrders(ctx context.Context, userID int64) ([]response.OrderResponse, []string)
	GetMyOrderDetail(ctx context.Context, userID, orderID int64) (*response.OrderDetailResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

// PlaceOrderForm loads the catalog for the order page. A failed load renders
// an empty form with a warning.
func (s *orderService) PlaceOrderForm(ctx context.Context) (*response.OrderForm, []string) {
	items, err := s.repo.LaundryItem.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load catalog for order form", zap.Error(err))
		form := response.LaundryItemsToForm(nil)
		return &form, []string{msgCatalogUnavailable}
	}

	form := response.LaundryItemsToForm(items)
	return &form, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, userID int64, req *request.PlaceOrderRequest) (*response.PlaceOrderResult, error) {
	result := &response.PlaceOrderResult{}

	// 1. Load catalog; prices only ever come from here
	items, err := s.repo.LaundryItem.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load catalog", zap.Error(err), zap.Int64("user_id", userID))
		metrics.RecordOrderPlaced(metrics.OutcomeFailed)
		form := response.LaundryItemsToForm(nil)
		result.Form = &form
		result.Warnings = append(result.Warnings, msgCatalogUnavailable)
		return result, utils.NewError(utils.ErrStorage, msgCatalogUnavailable)
	}
	form := response.LaundryItemsToForm(items)

	req.SpecialInstructions = strings.TrimSpace(req.SpecialInstructions)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", errs))
		metrics.RecordOrderPlaced(metrics.OutcomeRejected)
		result.Form = &form
		return result, utils.NewValidationError(utils.FormatValidationErrors(errs), errs)
	}

	// 2. Build lines from submitted quantities
	lines, total, warnings := buildOrderLines(items, req)
	result.Warnings = warnings

	// 3. Nothing orderable
	if len(lines) == 0 {
		s.log.Warn("Order rejected, no valid lines",
			zap.Int64("user_id", userID),
			zap.Int("warnings", len(warnings)))
		metrics.RecordOrderPlaced(metrics.OutcomeRejected)
		result.Form = &form
		return result, utils.NewError(utils.ErrValidation, msgNoValidItems)
	}

	// 4. Header
	order := &entity.Order{
		UserID:              userID,
		TotalAmount:         total,
		Status:              entity.OrderStatusPending,
		SpecialInstructions: req.SpecialInstructions,
	}
	if _, err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order header",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("total_amount", total.StringFixed(2)))
		metrics.RecordOrderPlaced(metrics.OutcomeFailed)
		result.Form = &form
		return result, utils.NewError(utils.ErrStorage, msgOrderHeaderFailed)
	}

	// 5. Lines are inserted independently; a failed line is reported, not compensated
	placed := &response.PlaceOrderResponse{
		OrderID:     order.ID,
		TotalAmount: response.Money(total),
		Lines:       make([]response.LineResult, 0, len(lines)),
	}
	for _, line := range lines {
		line.item.OrderID = order.ID
		lr := response.LineResult{
			LaundryItemID: line.item.LaundryItemID,
			Name:          line.name,
			Quantity:      line.item.Quantity,
			PricePerUnit:  response.Money(line.item.PricePerUnit),
			TotalPrice:    response.Money(line.item.TotalPrice),
			Inserted:      true,
		}
		if _, err := s.repo.Order.CreateItem(ctx, line.item); err != nil {
			s.log.Error("Failed to add order line",
				zap.Error(err),
				zap.Int64("order_id", order.ID),
				zap.Int64("laundry_item_id", line.item.LaundryItemID))
			lr.Inserted = false
			lr.Error = "not saved"
			placed.Partial = true
		}
		placed.Lines = append(placed.Lines, lr)
	}

	// 6. Report
	result.Order = placed
	result.Redirect = RedirectMyOrders
	if placed.Partial {
		result.Message = fmt.Sprintf(
			"Order #%d placed, but failed to add some items. Please contact support regarding order #%d.",
			order.ID, order.ID)
		metrics.RecordOrderPlaced(metrics.OutcomePartial)
		s.log.Warn("Order placed with missing lines",
			zap.Int64("order_id", order.ID),
			zap.Int64("user_id", userID))
		return result, nil
	}

	result.Message = fmt.Sprintf("Order #%d placed successfully!", order.ID)
	metrics.RecordOrderPlaced(metrics.OutcomeSuccess)
	s.log.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("lines", len(placed.Lines)),
		zap.String("total_amount", placed.TotalAmount))

	return result, nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID int64) ([]response.OrderResponse, []string) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get order history", zap.Error(err), zap.Int64("user_id", userID))
		return []response.OrderResponse{}, []string{msgHistoryUnavailable}
	}

	resp := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, response.OrderToResponse(order))
	}
	return resp, nil
}

func (s *orderService) GetMyOrderDetail(ctx context.Context, userID, orderID int64) (*response.OrderDetailResponse, error) {
	order, err := s.repo.Order.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	if order == nil {
		return nil, utils.NewError(utils.ErrNotFound, msgOrderNotFound)
	}

	items, err := s.repo.Order.FindItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get items of order %d: %w", orderID, err)
	}

	detail := &response.OrderDetailResponse{
		OrderResponse: response.OrderToResponse(order),
		Items:         make([]response.OrderItemResponse, 0, len(items)),
	}
	for _, item := range items {
		detail.Items = append(detail.Items, response.OrderItemToResponse(item))
	}
	return detail, nil
}

// ==================== HELPER METHODS ====================

type orderLine struct {
	name string
	item *entity.OrderItem
}

// buildOrderLines prices every catalog item the request names a quantity for.
// Blank quantities are skipped silently; anything that is not a positive
// integer is skipped with a warning.
func buildOrderLines(items []*entity.LaundryItem, req *request.PlaceOrderRequest) ([]orderLine, decimal.Decimal, []string) {
	var (
		lines    []orderLine
		warnings []string
		total    = decimal.Zero
	)

	for _, item := range items {
		raw, ok := req.Quantity(item.ID)
		if !ok {
			continue
		}

		qty, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || qty <= 0 {
			warnings = append(warnings, fmt.Sprintf("Invalid quantity entered for %s. It was ignored.", item.Name))
			continue
		}

		lineTotal := item.BasePrice.Mul(decimal.NewFromInt(qty))
		total = total.Add(lineTotal)
		lines = append(lines, orderLine{
			name: item.Name,
			item: &entity.OrderItem{
				LaundryItemID: item.ID,
				ItemName:      item.Name,
				Quantity:      int(qty),
				PricePerUnit:  item.BasePrice,
				TotalPrice:    lineTotal,
			},
		})
	}

	return lines, total, warnings
}
