package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realty-platform/internal/data/entity"
	"realty-platform/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	sessions map[string]*entity.Session
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	s.sessions[session.Token.String()] = session
	return nil
}

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return s.sessions[token], nil
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (s *stubSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *stubUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return 0, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func newStubs() (*stubSessionRepo, *stubUserRepo) {
	return &stubSessionRepo{sessions: make(map[string]*entity.Session)},
		&stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func addUser(users *stubUserRepo, role entity.UserRole) *entity.User {
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test User",
		Email:    uuid.New().String() + "@example.com",
		Role:     role,
		IsActive: true,
	}
	users.users[user.ID] = user
	return user
}

func addSession(sessions *stubSessionRepo, userID uuid.UUID) *entity.Session {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	sessions.sessions[session.Token.String()] = session
	return session
}

// echoUserID writes the resolved user ID so tests can assert identity.
func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(userID.String()))
	})
}

func TestAuthSessionValidToken(t *testing.T) {
	sessions, users := newStubs()
	user := addUser(users, entity.RoleClient)
	session := addSession(sessions, user.ID)

	handler := AuthSession(sessions, zap.NewNop())(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String(), rec.Body.String())
}

func TestAuthSessionStoresTokenInContext(t *testing.T) {
	sessions, users := newStubs()
	user := addUser(users, entity.RoleClient)
	session := addSession(sessions, user.ID)

	// Logout depends on the middleware exposing the raw bearer token.
	var seenToken string
	handler := AuthSession(sessions, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenToken, _ = utils.GetTokenFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.Token.String(), seenToken)
}

func TestAuthSessionMissingToken(t *testing.T) {
	sessions, _ := newStubs()

	handler := AuthSession(sessions, zap.NewNop())(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionRejectsLegacyToken(t *testing.T) {
	sessions, users := newStubs()
	user := addUser(users, entity.RoleClient)

	handler := AuthSession(sessions, zap.NewNop())(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	req.Header.Set("Authorization", "Bearer "+utils.EncodeLegacyToken(user.ID))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionOrLegacySessionPath(t *testing.T) {
	sessions, users := newStubs()
	user := addUser(users, entity.RoleClient)
	session := addSession(sessions, user.ID)

	handler := AuthSessionOrLegacy(sessions, users, zap.NewNop())(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String(), rec.Body.String())
}

func TestAuthSessionOrLegacyZeroTimestampAuthenticates(t *testing.T) {
	sessions, users := newStubs()
	user := addUser(users, entity.RoleClient)

	// A token stamped at unix 0 is ancient but still valid; the timestamp
	// carries no expiry semantics.
	raw := fmt.Sprintf("%s:0", user.ID.String())
	token := base64.StdEncoding.EncodeToString([]byte(raw))

	handler := AuthSessionOrLegacy(sessions, users, zap.NewNop())(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String(), rec.Body.String())
}

func TestAuthSessionOrLegacyUnknownUser(t *testing.T) {
	sessions, users := newStubs()

	handler := AuthSessionOrLegacy(sessions, users, zap.NewNop())(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	req.Header.Set("Authorization", "Bearer "+utils.EncodeLegacyToken(uuid.New()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionOrLegacyGarbageToken(t *testing.T) {
	sessions, users := newStubs()

	handler := AuthSessionOrLegacy(sessions, users, zap.NewNop())(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	sessions, users := newStubs()
	broker := addUser(users, entity.RoleBroker)
	session := addSession(sessions, broker.ID)

	var handlerRan bool
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	})

	chain := AuthSession(sessions, zap.NewNop())(Admin(users, zap.NewNop())(protected))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	// Non-admin gets 401 and the wrapped handler never runs.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan)
}

func TestAdminAllowsAdmin(t *testing.T) {
	sessions, users := newStubs()
	admin := addUser(users, entity.RoleAdmin)
	session := addSession(sessions, admin.ID)

	chain := AuthSession(sessions, zap.NewNop())(Admin(users, zap.NewNop())(echoUserID()))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBrokerMiddleware(t *testing.T) {
	sessions, users := newStubs()
	client := addUser(users, entity.RoleClient)
	broker := addUser(users, entity.RoleBroker)

	clientSession := addSession(sessions, client.ID)
	brokerSession := addSession(sessions, broker.ID)

	chain := AuthSession(sessions, zap.NewNop())(Broker(users, zap.NewNop())(echoUserID()))

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+clientSession.Token.String())
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+brokerSession.Token.String())
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
