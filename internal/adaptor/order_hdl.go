package adaptor

import (
	"net/http"

	"laundry-service/internal/dto/request"
	"laundry-service/internal/usecase"
	"laundry-service/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// PlaceOrderForm handles GET /place_order (protected)
func (h *OrderHandler) PlaceOrderForm(w http.ResponseWriter, r *http.Request) {
	form, warnings := h.service.PlaceOrderForm(r.Context())
	utils.ResponseNotice(w, "Place order", form, warnings, "")
}

// PlaceOrder handles POST /place_order (protected)
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Please log in to access this page.", "/login")
		return
	}

	var req request.PlaceOrderRequest
	if err := decodeRequest(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		resp := utils.Response{}
		if result != nil {
			resp.Data = result.Form
			resp.Warnings = result.Warnings
		}
		handleServiceError(w, h.log, err, "place order", resp)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, utils.Response{
		Status:   true,
		Message:  result.Message,
		Data:     result.Order,
		Warnings: result.Warnings,
		Redirect: result.Redirect,
	})
}

// MyOrders handles GET /my_orders (protected)
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Please log in to access this page.", "/login")
		return
	}

	orders, warnings := h.service.GetMyOrders(r.Context(), userID)
	utils.ResponseNotice(w, "My orders", orders, warnings, "")
}

// MyOrderDetail handles GET /my_orders/{order_id} (protected)
func (h *OrderHandler) MyOrderDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Please log in to access this page.", "/login")
		return
	}

	orderID, err := pathID(r, "order_id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	detail, err := h.service.GetMyOrderDetail(r.Context(), userID, orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get order detail", utils.Response{})
		return
	}

	utils.ResponseSuccess(w, "Order detail", detail)
}
