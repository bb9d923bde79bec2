package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/middleware"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	userHandler *adaptor.UserHandler,
	catalogHandler *adaptor.CatalogHandler,
	leadHandler *adaptor.LeadHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Back-office is session-only; the legacy mobile token never reaches it
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.Admin(repo.User, log))          // Must be admin

		// Dashboard
		r.Get("/stats", adminHandler.GetStats)

		// User management
		r.Get("/users", userHandler.GetUsers)
		r.Post("/users", userHandler.CreateUser)
		r.Delete("/users/{id}", userHandler.DeleteUser)

		// Lead oversight across all brokers
		r.Get("/leads", leadHandler.GetLeads)
		r.Put("/leads/{id}/status", leadHandler.UpdateLeadStatus)

		// Services catalog management
		r.Get("/service-categories", catalogHandler.GetCategories)
		r.Post("/service-categories", catalogHandler.CreateCategory)
		r.Get("/services", catalogHandler.GetServices)
		r.Post("/services", catalogHandler.CreateService)
		r.Get("/providers", catalogHandler.GetProviders)
		r.Post("/providers", catalogHandler.CreateProvider)
		r.Put("/providers/{id}/active", catalogHandler.SetProviderActive)
	})
}
