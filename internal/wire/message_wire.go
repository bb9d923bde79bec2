package wire

import (
	"realty-platform/internal/adaptor"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/middleware"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMessage(
	r chi.Router,
	messageHandler *adaptor.MessageHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== MOBILE + WEB ROUTES ====================
	// /api/messages accepts a session token or the legacy mobile token
	r.Route("/api/messages", func(r chi.Router) {
		r.Use(middleware.AuthSessionOrLegacy(repo.Session, repo.User, log))

		r.Get("/", messageHandler.GetMessages)
		r.Post("/", messageHandler.SendMessage)
		r.Get("/unread-count", messageHandler.GetUnreadCount)
		r.Get("/{userId}", messageHandler.GetThread)
	})

	// ==================== WEB-ONLY ROUTES ====================
	// /api/chat is the web surface; session tokens only
	r.Route("/api/chat", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", messageHandler.GetMessages)
		r.Post("/", messageHandler.SendMessage)
		r.Get("/{userId}", messageHandler.GetThread)
	})
}
