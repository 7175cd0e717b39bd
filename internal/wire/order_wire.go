package wire

import (
	"laundry-service/internal/adaptor"
	"laundry-service/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(log))

		r.Get("/place_order", orderHandler.PlaceOrderForm)
		r.Post("/place_order", orderHandler.PlaceOrder)

		r.Get("/my_orders", orderHandler.MyOrders)
		r.Get("/my_orders/{order_id}", orderHandler.MyOrderDetail)
	})
}
