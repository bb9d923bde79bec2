package usecase

import (
	"context"
	"fmt"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/data/repository"
	"realty-platform/internal/dto/request"
	"realty-platform/internal/dto/response"
	"realty-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeadService interface {
	ListLeads(ctx context.Context, callerID uuid.UUID, status *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.LeadResponse], error)
	UpdateLeadStatus(ctx context.Context, callerID uuid.UUID, leadID string, req *request.LeadStatusRequest) (*response.LeadResponse, error)
}

type leadService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLeadService(repo *repository.Repository, log *zap.Logger) LeadService {
	return &leadService{
		repo: repo,
		log:  log,
	}
}

// ListLeads returns the caller's lead inbox, newest first. Admins see every
// broker's leads; brokers only their own.
func (s *leadService) ListLeads(ctx context.Context, callerID uuid.UUID, status *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.LeadResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	caller, err := s.findCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	brokerID := &callerID
	if caller.IsAdmin() {
		brokerID = nil
	}

	offset := utils.CalculateOffset(req.Page, req.PerPage)

	leads, err := s.repo.Lead.FindAll(ctx, brokerID, status, req.PerPage, offset)
	if err != nil {
		s.log.Error("Failed to list leads", zap.Error(err), zap.String("caller_id", callerID.String()))
		return nil, fmt.Errorf("failed to get leads")
	}

	total, err := s.repo.Lead.CountAll(ctx, brokerID, status)
	if err != nil {
		s.log.Error("Failed to count leads", zap.Error(err))
		return nil, fmt.Errorf("failed to count leads")
	}

	return response.NewPaginatedResponse(response.LeadsToResponse(leads), req.Page, req.PerPage, total), nil
}

func (s *leadService) UpdateLeadStatus(ctx context.Context, callerID uuid.UUID, leadID string, req *request.LeadStatusRequest) (*response.LeadResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Lead status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(leadID)
	if err != nil {
		return nil, fmt.Errorf("invalid lead ID")
	}

	lead, err := s.repo.Lead.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find lead", zap.Error(err), zap.String("lead_id", leadID))
		return nil, fmt.Errorf("failed to get lead")
	}
	if lead == nil {
		return nil, fmt.Errorf("lead not found")
	}

	if lead.BrokerID != callerID {
		caller, err := s.findCaller(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if !caller.IsAdmin() {
			s.log.Warn("Forbidden lead status update",
				zap.String("caller_id", callerID.String()),
				zap.String("lead_id", leadID))
			return nil, fmt.Errorf("forbidden: not the lead owner")
		}
	}

	status := entity.LeadStatus(req.Status)
	if err := s.repo.Lead.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update lead status",
			zap.Error(err),
			zap.String("lead_id", leadID),
			zap.String("status", req.Status))
		return nil, fmt.Errorf("failed to update lead status")
	}

	s.log.Info("Lead status updated",
		zap.String("lead_id", leadID),
		zap.String("status", req.Status))

	lead.Status = status
	resp := response.LeadToResponse(lead)
	return &resp, nil
}

func (s *leadService) findCaller(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
	caller, err := s.repo.User.FindByID(ctx, callerID)
	if err != nil {
		s.log.Error("Failed to find caller", zap.Error(err), zap.String("caller_id", callerID.String()))
		return nil, fmt.Errorf("failed to get leads")
	}
	if caller == nil {
		return nil, fmt.Errorf("user not found")
	}

	return caller, nil
}
