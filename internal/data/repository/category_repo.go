package repository

import (
	"context"
	"fmt"

	"realty-platform/internal/data/entity"
	"realty-platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceCategoryRepository interface {
	Create(ctx context.Context, category *entity.ServiceCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error)
	FindBySlug(ctx context.Context, slug string) (*entity.ServiceCategory, error)
	FindAll(ctx context.Context) ([]*entity.ServiceCategory, error)
	CountAll(ctx context.Context) (int64, error)
}

type serviceCategoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceCategoryRepository(db database.PgxIface, log *zap.Logger) ServiceCategoryRepository {
	return &serviceCategoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "service_category")),
	}
}

func (r *serviceCategoryRepository) Create(ctx context.Context, category *entity.ServiceCategory) error {
	query := `
		INSERT INTO service_categories (id, name, slug, description, icon,
		                               created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
		category.Icon,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service category",
			zap.Error(err),
			zap.String("slug", category.Slug),
		)
		if IsUniqueViolation(err) {
			return fmt.Errorf("category slug already exists")
		}
		return fmt.Errorf("failed to create service category: %w", err)
	}

	return nil
}

func (r *serviceCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, slug, description, icon, created_at, updated_at
		FROM service_categories
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

func (r *serviceCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, slug, description, icon, created_at, updated_at
		FROM service_categories
		WHERE slug = $1
	`

	return r.scanOne(ctx, query, slug)
}

func (r *serviceCategoryRepository) scanOne(ctx context.Context, query string, arg any) (*entity.ServiceCategory, error) {
	var category entity.ServiceCategory
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.Description,
		&category.Icon,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service category", zap.Error(err))
		return nil, fmt.Errorf("failed to find service category: %w", err)
	}

	return &category, nil
}

func (r *serviceCategoryRepository) FindAll(ctx context.Context) ([]*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, slug, description, icon, created_at, updated_at
		FROM service_categories
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find service categories", zap.Error(err))
		return nil, fmt.Errorf("find all service categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.ServiceCategory
	for rows.Next() {
		var category entity.ServiceCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.Description,
			&category.Icon,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan service category row", zap.Error(err))
			return nil, fmt.Errorf("scan service category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate service categories rows: %w", err)
	}

	return categories, nil
}

func (r *serviceCategoryRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM service_categories`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting service categories", zap.Error(err))
		return 0, fmt.Errorf("count service categories: %w", err)
	}

	return count, nil
}
