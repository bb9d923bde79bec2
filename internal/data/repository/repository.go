package repository

import (
	"errors"

	"realty-platform/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Property PropertyRepository
	Lead     LeadRepository
	Message  MessageRepository
	Category ServiceCategoryRepository
	Service  ServiceRepository
	Provider ServiceProviderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Property: NewPropertyRepository(db, log),
		Lead:     NewLeadRepository(db, log),
		Message:  NewMessageRepository(db, log),
		Category: NewServiceCategoryRepository(db, log),
		Service:  NewServiceRepository(db, log),
		Provider: NewServiceProviderRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505), so callers can answer 400 instead of 500.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
