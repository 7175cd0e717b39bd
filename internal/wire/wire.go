package wire

import (
	"net/http"

	"laundry-service/internal/adaptor"
	"laundry-service/internal/data/repository"
	"laundry-service/internal/usecase"
	"laundry-service/pkg/metrics"
	"laundry-service/pkg/middleware"
	"laundry-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the repositories
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	codec := utils.NewSessionCodec(config.Session, !config.App.Debug)

	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, codec, config.App.Name, logger)

	router := setupRouter(handler, codec, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	codec *utils.SessionCodec,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.Session(codec, logger))

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireOrder(r, handler.Order, logger)
	wireAdmin(r, handler.Admin, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
