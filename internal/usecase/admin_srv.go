package usecase

import (
	"context"
	"fmt"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/data/repository"
	"realty-platform/internal/dto/response"

	"go.uber.org/zap"
)

type AdminService interface {
	GetStats(ctx context.Context) (*response.AdminStatsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log,
	}
}

// GetStats aggregates the back-office dashboard counters. Counts are read
// individually; the dashboard tolerates slight skew between them.
func (s *adminService) GetStats(ctx context.Context) (*response.AdminStatsResponse, error) {
	stats := &response.AdminStatsResponse{}

	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, s.statsErr("count users", err)
	}
	stats.Users.Total = totalUsers

	if stats.Users.Admins, err = s.repo.User.CountByRole(ctx, entity.RoleAdmin); err != nil {
		return nil, s.statsErr("count admins", err)
	}
	if stats.Users.Brokers, err = s.repo.User.CountByRole(ctx, entity.RoleBroker); err != nil {
		return nil, s.statsErr("count brokers", err)
	}
	if stats.Users.Clients, err = s.repo.User.CountByRole(ctx, entity.RoleClient); err != nil {
		return nil, s.statsErr("count clients", err)
	}

	if stats.Properties.Available, err = s.repo.Property.CountByStatus(ctx, entity.PropertyStatusAvailable); err != nil {
		return nil, s.statsErr("count available properties", err)
	}
	if stats.Properties.Reserved, err = s.repo.Property.CountByStatus(ctx, entity.PropertyStatusReserved); err != nil {
		return nil, s.statsErr("count reserved properties", err)
	}
	if stats.Properties.Sold, err = s.repo.Property.CountByStatus(ctx, entity.PropertyStatusSold); err != nil {
		return nil, s.statsErr("count sold properties", err)
	}
	stats.Properties.Total = stats.Properties.Available + stats.Properties.Reserved + stats.Properties.Sold

	if stats.Leads.Total, err = s.repo.Lead.CountAll(ctx, nil, nil); err != nil {
		return nil, s.statsErr("count leads", err)
	}
	if stats.Leads.New, err = s.repo.Lead.CountByStatus(ctx, entity.LeadStatusNew); err != nil {
		return nil, s.statsErr("count new leads", err)
	}
	if stats.Leads.Contacted, err = s.repo.Lead.CountByStatus(ctx, entity.LeadStatusContacted); err != nil {
		return nil, s.statsErr("count contacted leads", err)
	}
	if stats.Leads.Qualified, err = s.repo.Lead.CountByStatus(ctx, entity.LeadStatusQualified); err != nil {
		return nil, s.statsErr("count qualified leads", err)
	}
	if stats.Leads.Closed, err = s.repo.Lead.CountByStatus(ctx, entity.LeadStatusClosed); err != nil {
		return nil, s.statsErr("count closed leads", err)
	}

	if stats.Messaging.Unread, err = s.repo.Message.CountAllUnread(ctx); err != nil {
		return nil, s.statsErr("count unread messages", err)
	}

	if stats.Catalog.Categories, err = s.repo.Category.CountAll(ctx); err != nil {
		return nil, s.statsErr("count categories", err)
	}
	if stats.Catalog.ActiveServices, err = s.repo.Service.CountActive(ctx); err != nil {
		return nil, s.statsErr("count active services", err)
	}
	if stats.Catalog.ActiveProviders, err = s.repo.Provider.CountActive(ctx); err != nil {
		return nil, s.statsErr("count active providers", err)
	}

	return stats, nil
}

func (s *adminService) statsErr(step string, err error) error {
	s.log.Error("Failed to build admin stats", zap.String("step", step), zap.Error(err))
	return fmt.Errorf("failed to get stats")
}
