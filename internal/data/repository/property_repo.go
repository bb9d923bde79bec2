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

// PropertyFilter holds the optional listing search filters. Nil fields are
// not applied.
type PropertyFilter struct {
	Type     *string
	Status   *string
	City     *string
	MinPrice *float64
	MaxPrice *float64
	Bedrooms *int
	BrokerID *uuid.UUID
}

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindAll(ctx context.Context, filter PropertyFilter, limit, offset int) ([]*entity.Property, error)
	CountAll(ctx context.Context, filter PropertyFilter) (int64, error)
	CountByStatus(ctx context.Context, status entity.PropertyStatus) (int64, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	query := `
		INSERT INTO properties (id, broker_id, title, description, type, status,
		                       price, currency, bedrooms, bathrooms, area_m2,
		                       address, city, state, amenities, images,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		property.ID,
		property.BrokerID,
		property.Title,
		property.Description,
		property.Type,
		property.Status,
		property.Price,
		property.Currency,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaM2,
		property.Address,
		property.City,
		property.State,
		property.Amenities,
		property.Images,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("title", property.Title),
			zap.String("broker_id", property.BrokerID.String()),
		)
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `
		SELECT id, broker_id, title, description, type, status, price, currency,
		       bedrooms, bathrooms, area_m2, address, city, state, amenities,
		       images, created_at, updated_at, deleted_at
		FROM properties
		WHERE id = $1 AND deleted_at IS NULL
	`

	var property entity.Property
	err := r.db.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.BrokerID,
		&property.Title,
		&property.Description,
		&property.Type,
		&property.Status,
		&property.Price,
		&property.Currency,
		&property.Bedrooms,
		&property.Bathrooms,
		&property.AreaM2,
		&property.Address,
		&property.City,
		&property.State,
		&property.Amenities,
		&property.Images,
		&property.CreatedAt,
		&property.UpdatedAt,
		&property.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	return &property, nil
}

// buildFilterClause appends the WHERE conditions for the given filter and
// returns the collected args.
func buildFilterClause(qb *strings.Builder, filter PropertyFilter) []interface{} {
	args := []interface{}{}
	argCount := 1

	if filter.Type != nil {
		qb.WriteString(fmt.Sprintf(" AND type = $%d", argCount))
		args = append(args, *filter.Type)
		argCount++
	}
	if filter.Status != nil {
		qb.WriteString(fmt.Sprintf(" AND status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}
	if filter.City != nil {
		qb.WriteString(fmt.Sprintf(" AND LOWER(city) = LOWER($%d)", argCount))
		args = append(args, *filter.City)
		argCount++
	}
	if filter.MinPrice != nil {
		qb.WriteString(fmt.Sprintf(" AND price >= $%d", argCount))
		args = append(args, *filter.MinPrice)
		argCount++
	}
	if filter.MaxPrice != nil {
		qb.WriteString(fmt.Sprintf(" AND price <= $%d", argCount))
		args = append(args, *filter.MaxPrice)
		argCount++
	}
	if filter.Bedrooms != nil {
		qb.WriteString(fmt.Sprintf(" AND bedrooms >= $%d", argCount))
		args = append(args, *filter.Bedrooms)
		argCount++
	}
	if filter.BrokerID != nil {
		qb.WriteString(fmt.Sprintf(" AND broker_id = $%d", argCount))
		args = append(args, *filter.BrokerID)
		argCount++
	}

	return args
}

func (r *propertyRepository) FindAll(ctx context.Context, filter PropertyFilter, limit, offset int) ([]*entity.Property, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, broker_id, title, description, type, status, price, currency,
		       bedrooms, bathrooms, area_m2, address, city, state, amenities,
		       images, created_at, updated_at
		FROM properties
		WHERE deleted_at IS NULL
	`)

	args := buildFilterClause(&queryBuilder, filter)

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find properties",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all properties: %w", err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		var property entity.Property
		err := rows.Scan(
			&property.ID,
			&property.BrokerID,
			&property.Title,
			&property.Description,
			&property.Type,
			&property.Status,
			&property.Price,
			&property.Currency,
			&property.Bedrooms,
			&property.Bathrooms,
			&property.AreaM2,
			&property.Address,
			&property.City,
			&property.State,
			&property.Amenities,
			&property.Images,
			&property.CreatedAt,
			&property.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, &property)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate properties rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) CountAll(ctx context.Context, filter PropertyFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM properties WHERE deleted_at IS NULL`)

	args := buildFilterClause(&queryBuilder, filter)

	var count int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting properties", zap.Error(err))
		return 0, fmt.Errorf("count properties: %w", err)
	}

	return count, nil
}

func (r *propertyRepository) CountByStatus(ctx context.Context, status entity.PropertyStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM properties WHERE status = $1 AND deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting properties by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count properties by status %s: %w", status, err)
	}

	return count, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	query := `
		UPDATE properties
		SET title = $2, description = $3, type = $4, status = $5, price = $6,
		    currency = $7, bedrooms = $8, bathrooms = $9, area_m2 = $10,
		    address = $11, city = $12, state = $13, amenities = $14,
		    images = $15, updated_at = $16
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Description,
		property.Type,
		property.Status,
		property.Price,
		property.Currency,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaM2,
		property.Address,
		property.City,
		property.State,
		property.Amenities,
		property.Images,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", property.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found or already deleted", property.ID.String())
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE properties SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete property %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	r.log.Info("Property deleted", zap.String("id", id.String()))
	return nil
}
