package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCredit(
	r chi.Router,
	creditHandler *adaptor.CreditHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/credit/simulate - public, pure computation
	r.Post("/api/credit/simulate", creditHandler.Simulate)
}
