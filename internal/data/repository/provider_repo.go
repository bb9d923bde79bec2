package repository

import (
	"context"
	"fmt"
	"strings"

	"realty-platform/internal/data/entity"
	"realty-platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceProviderRepository interface {
	Create(ctx context.Context, provider *entity.ServiceProvider) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error)
	FindAll(ctx context.Context, onlyActive bool, specialty *string) ([]*entity.ServiceProvider, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	CountActive(ctx context.Context) (int64, error)
}

type serviceProviderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceProviderRepository(db database.PgxIface, log *zap.Logger) ServiceProviderRepository {
	return &serviceProviderRepository{
		db:  db,
		log: log.With(zap.String("repository", "service_provider")),
	}
}

func (r *serviceProviderRepository) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	query := `
		INSERT INTO service_providers (id, name, specialty, phone, email,
		                              rating, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		provider.ID,
		provider.Name,
		provider.Specialty,
		provider.Phone,
		provider.Email,
		provider.Rating,
		provider.IsActive,
		provider.CreatedAt,
		provider.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service provider",
			zap.Error(err),
			zap.String("name", provider.Name),
		)
		return fmt.Errorf("failed to create service provider: %w", err)
	}

	return nil
}

func (r *serviceProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	query := `
		SELECT id, name, specialty, phone, email, rating, is_active,
		       created_at, updated_at
		FROM service_providers
		WHERE id = $1
	`

	var provider entity.ServiceProvider
	err := r.db.QueryRow(ctx, query, id).Scan(
		&provider.ID,
		&provider.Name,
		&provider.Specialty,
		&provider.Phone,
		&provider.Email,
		&provider.Rating,
		&provider.IsActive,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service provider by ID",
			zap.Error(err),
			zap.String("provider_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find service provider: %w", err)
	}

	return &provider, nil
}

func (r *serviceProviderRepository) FindAll(ctx context.Context, onlyActive bool, specialty *string) ([]*entity.ServiceProvider, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, specialty, phone, email, rating, is_active,
		       created_at, updated_at
		FROM service_providers
		WHERE 1=1
	`)

	args := []interface{}{}
	argCount := 1

	if onlyActive {
		queryBuilder.WriteString(" AND is_active = TRUE")
	}
	if specialty != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND LOWER(specialty) = LOWER($%d)", argCount))
		args = append(args, *specialty)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY rating DESC, name ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find service providers", zap.Error(err))
		return nil, fmt.Errorf("find service providers: %w", err)
	}
	defer rows.Close()

	var providers []*entity.ServiceProvider
	for rows.Next() {
		var provider entity.ServiceProvider
		err := rows.Scan(
			&provider.ID,
			&provider.Name,
			&provider.Specialty,
			&provider.Phone,
			&provider.Email,
			&provider.Rating,
			&provider.IsActive,
			&provider.CreatedAt,
			&provider.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan service provider row", zap.Error(err))
			return nil, fmt.Errorf("scan service provider row: %w", err)
		}
		providers = append(providers, &provider)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate service providers rows: %w", err)
	}

	return providers, nil
}

func (r *serviceProviderRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `
		UPDATE service_providers
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		r.log.Error("Failed to update service provider active flag",
			zap.Error(err),
			zap.String("provider_id", id.String()),
		)
		return fmt.Errorf("set provider active %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service provider %s not found", id.String())
	}

	return nil
}

func (r *serviceProviderRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM service_providers WHERE is_active = TRUE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting active service providers", zap.Error(err))
		return 0, fmt.Errorf("count active service providers: %w", err)
	}

	return count, nil
}
