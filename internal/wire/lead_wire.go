package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/middleware"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLead(
	r chi.Router,
	leadHandler *adaptor.LeadHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== BROKER ROUTES ====================
	r.Route("/api/leads", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.Broker(repo.User, log))         // Must be broker or admin

		r.Get("/", leadHandler.GetLeads)
		r.Put("/{id}/status", leadHandler.UpdateLeadStatus)
	})
}
