package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/middleware"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/mobile-login", authHandler.MobileLogin)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// ==================== AUTHENTICATED ROUTES ====================
	// Logout revokes the session named by the bearer token, so the token
	// must resolve to a live session first
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Post("/api/auth/logout", authHandler.Logout)
	})
}
