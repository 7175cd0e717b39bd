package adaptor

import (
	"net/http"

	"laundry-service/internal/data/entity"
	"laundry-service/internal/dto/request"
	"laundry-service/internal/usecase"
	"laundry-service/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// Dashboard handles GET /admin (admin only)
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	orders, warnings := h.service.GetAllOrders(r.Context())
	utils.ResponseNotice(w, "Admin dashboard", map[string]any{
		"orders":   orders,
		"statuses": entity.OrderStatuses,
	}, warnings, "")
}

// UpdateStatus handles POST /admin/update_status/{order_id} (admin only)
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.UpdateStatusRequest
	if err := decodeRequest(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		resp := utils.Response{}
		if result != nil {
			resp.Warnings = result.Warnings
			resp.Redirect = result.Redirect
		}
		handleServiceError(w, h.log, err, "update order status", resp)
		return
	}

	utils.ResponseNotice(w, result.Message, result.Update, result.Warnings, result.Redirect)
}
