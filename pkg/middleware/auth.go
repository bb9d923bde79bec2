package middleware

import (
	"net/http"
	"strings"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// AuthSession validates a server-managed session token. This is the only
// resolver accepted on admin routes.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			session, err := resolveSession(r, sessionRepo, logger, token)
			if err != nil {
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID, "")
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthSessionOrLegacy resolves identity from a session token first, then
// falls back to the legacy mobile token (base64 "userId:timestamp"). The
// legacy timestamp is never checked for expiry; a token stamped 0 still
// authenticates. Decode failures mean no identity, never a 500.
func AuthSessionOrLegacy(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			// Session path wins; the legacy path is not attempted when a
			// valid session exists.
			if _, parseErr := uuid.Parse(token); parseErr == nil {
				session, err := resolveSession(r, sessionRepo, logger, token)
				if err != nil {
					utils.ResponseInternalError(w, "Internal server error")
					return
				}
				if session != nil {
					ctx := utils.SetUserContext(r.Context(), session.UserID, "")
					ctx = utils.SetTokenContext(ctx, token)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			userID, _, err := utils.DecodeLegacyToken(token)
			if err != nil {
				logger.Warn("Unparseable bearer token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve legacy token user",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(r *http.Request, sessionRepo repository.SessionRepository, logger *zap.Logger, token string) (*entity.Session, error) {
	session, err := sessionRepo.FindValidSession(r.Context(), token)
	if err != nil {
		logger.Error("Failed to validate session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// Admin requires an authenticated identity with role ADMIN. Non-admin
// callers get a 401 and the wrapped handler never runs.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Broker requires an authenticated identity with role BROKER (admins pass
// too, they manage listings on brokers' behalf).
func Broker(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Broker check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || (user.Role != entity.RoleBroker && user.Role != entity.RoleAdmin) {
				logger.Warn("Broker check: access attempt without broker role",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Broker access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
