package wire

import (
	"laundry-service/internal/adaptor"
	"laundry-service/pkg/middleware"
	"laundry-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	limiter := middleware.NewRateLimiter(config.Limits.LoginPerMinute, log.With(zap.String("middleware", "login_limiter")))

	// ==================== PUBLIC ROUTES ====================
	r.Get("/", authHandler.Index)
	r.Get("/register", authHandler.RegisterForm)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.LoginForm)
	r.With(limiter.Middleware).Post("/login", authHandler.Login)

	// Logout works with or without a session
	r.Get("/logout", authHandler.Logout)
}
