// internal/wire/wire.go
package wire

import (
	"net/http"

	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/internal/usecase"
	"realty-platform/pkg/middleware"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireProperty(r, handler.Property, repo, config, logger)
	wireContact(r, handler.Contact, repo, config, logger)
	wireMessage(r, handler.Message, repo, config, logger)
	wireLead(r, handler.Lead, repo, config, logger)
	wireCatalog(r, handler.Catalog, repo, config, logger)
	wireAdmin(r, handler.Admin, handler.User, handler.Catalog, handler.Lead, repo, config, logger)
	wireCredit(r, handler.Credit, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
