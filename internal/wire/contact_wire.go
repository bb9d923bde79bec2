package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/contact - public lead-capture form, no auth
	r.Post("/api/contact", contactHandler.SubmitContact)
}
