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

// ServiceFilter narrows the public catalog listing. The active flag is
// always applied by FindActive.
type ServiceFilter struct {
	CategoryID   *uuid.UUID
	CategorySlug *string
	Popular      *bool
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindActive(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)
	FindAll(ctx context.Context) ([]*entity.Service, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, category_id, name, description, price_from,
		                     is_active, is_popular, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.CategoryID,
		service.Name,
		service.Description,
		service.PriceFrom,
		service.IsActive,
		service.IsPopular,
		service.CreatedAt,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
		)
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `
		SELECT id, category_id, name, description, price_from, is_active,
		       is_popular, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var service entity.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.CategoryID,
		&service.Name,
		&service.Description,
		&service.PriceFrom,
		&service.IsActive,
		&service.IsPopular,
		&service.CreatedAt,
		&service.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return &service, nil
}

// FindActive lists active services with the optional catalog filters. The
// result set is unbounded; the catalog stays small.
func (r *serviceRepository) FindActive(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT s.id, s.category_id, s.name, s.description, s.price_from,
		       s.is_active, s.is_popular, s.created_at, s.updated_at
		FROM services s
	`)

	args := []interface{}{}
	argCount := 1

	if filter.CategorySlug != nil {
		queryBuilder.WriteString(" JOIN service_categories c ON c.id = s.category_id")
	}

	queryBuilder.WriteString(" WHERE s.is_active = TRUE")

	if filter.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.category_id = $%d", argCount))
		args = append(args, *filter.CategoryID)
		argCount++
	}
	if filter.CategorySlug != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.slug = $%d", argCount))
		args = append(args, *filter.CategorySlug)
		argCount++
	}
	if filter.Popular != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.is_popular = $%d", argCount))
		args = append(args, *filter.Popular)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY s.name ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find active services", zap.Error(err))
		return nil, fmt.Errorf("find active services: %w", err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, category_id, name, description, price_from, is_active,
		       is_popular, created_at, updated_at
		FROM services
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find services", zap.Error(err))
		return nil, fmt.Errorf("find all services: %w", err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *serviceRepository) scanServices(rows pgx.Rows) ([]*entity.Service, error) {
	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.CategoryID,
			&service.Name,
			&service.Description,
			&service.PriceFrom,
			&service.IsActive,
			&service.IsPopular,
			&service.CreatedAt,
			&service.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate services rows: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM services WHERE category_id = $1 AND is_active = TRUE`

	var count int64
	err := r.db.QueryRow(ctx, query, categoryID).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting services by category",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return 0, fmt.Errorf("count services by category: %w", err)
	}

	return count, nil
}

func (r *serviceRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM services WHERE is_active = TRUE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting active services", zap.Error(err))
		return 0, fmt.Errorf("count active services: %w", err)
	}

	return count, nil
}
