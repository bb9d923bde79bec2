package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Services marketplace catalog, read-only
	r.Get("/api/services", catalogHandler.GetServices)
	r.Get("/api/services/categories", catalogHandler.GetCategories)
	r.Get("/api/providers", catalogHandler.GetProviders)
}
