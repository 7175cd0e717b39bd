package wire

import (
	"laundry-service/internal/adaptor"
	"laundry-service/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(log))

		r.Get("/", adminHandler.Dashboard)
		r.Post("/update_status/{order_id}", adminHandler.UpdateStatus)
	})
}
