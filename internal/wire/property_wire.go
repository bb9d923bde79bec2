package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/middleware"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/properties - search listings (public)
	r.Get("/api/properties", propertyHandler.GetProperties)

	// GET /api/properties/{id} - listing detail (public)
	r.Get("/api/properties/{id}", propertyHandler.GetPropertyByID)

	// ==================== BROKER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.Broker(repo.User, log))         // Must be broker or admin

		r.Post("/api/properties", propertyHandler.CreateProperty)
		r.Put("/api/properties/{id}", propertyHandler.UpdateProperty)
		r.Delete("/api/properties/{id}", propertyHandler.DeleteProperty)
	})
}
