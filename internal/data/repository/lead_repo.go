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

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	FindAll(ctx context.Context, brokerID *uuid.UUID, status *string, limit, offset int) ([]*entity.Lead, error)
	CountAll(ctx context.Context, brokerID *uuid.UUID, status *string) (int64, error)
	CountByStatus(ctx context.Context, status entity.LeadStatus) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error
}

type leadRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLeadRepository(db database.PgxIface, log *zap.Logger) LeadRepository {
	return &leadRepository{
		db:  db,
		log: log.With(zap.String("repository", "lead")),
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, broker_id, property_id, name, email, phone,
		                  message, status, priority, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		lead.ID,
		lead.BrokerID,
		lead.PropertyID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Message,
		lead.Status,
		lead.Priority,
		lead.Source,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create lead",
			zap.Error(err),
			zap.String("broker_id", lead.BrokerID.String()),
			zap.String("name", lead.Name),
		)
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	query := `
		SELECT id, broker_id, property_id, name, email, phone, message,
		       status, priority, source, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.BrokerID,
		&lead.PropertyID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Message,
		&lead.Status,
		&lead.Priority,
		&lead.Source,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lead by ID",
			zap.Error(err),
			zap.String("lead_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find lead: %w", err)
	}

	return &lead, nil
}

// FindAll lists leads newest first. brokerID and status are optional; admin
// callers pass a nil brokerID to see every broker's inbox.
func (r *leadRepository) FindAll(ctx context.Context, brokerID *uuid.UUID, status *string, limit, offset int) ([]*entity.Lead, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, broker_id, property_id, name, email, phone, message,
		       status, priority, source, created_at, updated_at
		FROM leads
		WHERE 1=1
	`)

	args := []interface{}{}
	argCount := 1

	if brokerID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND broker_id = $%d", argCount))
		args = append(args, *brokerID)
		argCount++
	}
	if status != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND status = $%d", argCount))
		args = append(args, *status)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find leads", zap.Error(err))
		return nil, fmt.Errorf("find all leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var lead entity.Lead
		err := rows.Scan(
			&lead.ID,
			&lead.BrokerID,
			&lead.PropertyID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.Message,
			&lead.Status,
			&lead.Priority,
			&lead.Source,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan lead row", zap.Error(err))
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate leads rows: %w", err)
	}

	return leads, nil
}

func (r *leadRepository) CountAll(ctx context.Context, brokerID *uuid.UUID, status *string) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM leads WHERE 1=1`)

	args := []interface{}{}
	argCount := 1

	if brokerID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND broker_id = $%d", argCount))
		args = append(args, *brokerID)
		argCount++
	}
	if status != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND status = $%d", argCount))
		args = append(args, *status)
		argCount++
	}

	var count int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting leads", zap.Error(err))
		return 0, fmt.Errorf("count leads: %w", err)
	}

	return count, nil
}

func (r *leadRepository) CountByStatus(ctx context.Context, status entity.LeadStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM leads WHERE status = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting leads by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count leads by status %s: %w", status, err)
	}

	return count, nil
}

func (r *leadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error {
	query := `
		UPDATE leads
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update lead status",
			zap.Error(err),
			zap.String("lead_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update lead status %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lead %s not found", id.String())
	}

	return nil
}
