package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"laundry-service/internal/data/entity"
	"laundry-service/internal/data/repository"
	"laundry-service/internal/dto/request"
	"laundry-service/internal/dto/response"
	"laundry-service/pkg/metrics"
	"laundry-service/pkg/utils"

	"go.uber.org/zap"
)

const (
	RedirectAdmin = "/admin"

	dueDateLayout = "2006-01-02"

	msgAdminOrdersUnavailable = "Error fetching orders from the database."
	msgInvalidStatus          = "Invalid status selected."
)

type AdminService interface {
	GetAllOrders(ctx context.Context) ([]response.AdminOrderResponse, []string)
	UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateStatusRequest) (*response.StatusUpdateResult, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetAllOrders(ctx context.Context) ([]response.AdminOrderResponse, []string) {
	orders, err := s.repo.Order.FindAllWithOwner(ctx)
	if err != nil {
		s.log.Error("Failed to load orders for dashboard", zap.Error(err))
		return []response.AdminOrderResponse{}, []string{msgAdminOrdersUnavailable}
	}

	resp := make([]response.AdminOrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, response.AdminOrderToResponse(order))
	}
	return resp, nil
}

// UpdateStatus sets the status of an order and, when a well-formed date is
// given, its due date. Transitions between statuses are not restricted.
func (s *adminService) UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateStatusRequest) (*response.StatusUpdateResult, error) {
	result := &response.StatusUpdateResult{Redirect: RedirectAdmin}

	// 1. Status must be one of the known values
	status, err := entity.ParseOrderStatus(strings.TrimSpace(req.OrderStatus))
	if err != nil {
		s.log.Warn("Rejected status update",
			zap.Int64("order_id", orderID),
			zap.String("status", req.OrderStatus))
		metrics.RecordStatusUpdate(metrics.OutcomeRejected)
		return result, utils.NewError(utils.ErrValidation, msgInvalidStatus)
	}

	// 2. A malformed due date is dropped with a warning; the status still applies
	var dueDate *time.Time
	if raw := strings.TrimSpace(req.DueDate); raw != "" {
		parsed, err := time.Parse(dueDateLayout, raw)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Invalid date format \"%s\". Use YYYY-MM-DD.", raw))
		} else {
			dueDate = &parsed
		}
	}

	// 3. Single update keyed by order id
	affected, err := s.repo.Order.UpdateStatus(ctx, orderID, status, dueDate)
	if err != nil {
		metrics.RecordStatusUpdate(metrics.OutcomeFailed)
		return result, utils.NewError(utils.ErrStorage,
			fmt.Sprintf("Failed to update Order #%d. Database error.", orderID))
	}

	update := &response.StatusUpdateResponse{
		OrderID: orderID,
		Status:  status,
		DueDate: response.FormatDate(dueDate),
		Changed: affected > 0,
	}

	if affected > 0 {
		s.log.Info("Order status updated",
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
			zap.Bool("due_date_set", dueDate != nil))
		metrics.RecordStatusUpdate(metrics.OutcomeSuccess)
		result.Message = fmt.Sprintf("Order #%d details updated successfully.", orderID)
		result.Update = update
		return result, nil
	}

	// 4. Nothing changed: tell a no-op apart from a missing order
	exists, err := s.repo.Order.Exists(ctx, orderID)
	if err != nil {
		metrics.RecordStatusUpdate(metrics.OutcomeFailed)
		return result, utils.NewError(utils.ErrStorage,
			fmt.Sprintf("Failed to update Order #%d. Database error.", orderID))
	}
	if !exists {
		s.log.Warn("Status update for missing order", zap.Int64("order_id", orderID))
		metrics.RecordStatusUpdate(metrics.OutcomeNotFound)
		return result, utils.NewError(utils.ErrNotFound, fmt.Sprintf("Order #%d not found.", orderID))
	}

	metrics.RecordStatusUpdate(metrics.OutcomeUnchanged)
	result.Message = fmt.Sprintf("Order #%d found, but no changes made (status/date may be the same).", orderID)
	result.Update = update
	return result, nil
}
