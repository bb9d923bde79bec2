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

// ServiceListFilter mirrors the public catalog query parameters.
type ServiceListFilter struct {
	CategoryID   *string
	CategorySlug *string
	Popular      *bool
}

type CatalogService interface {
	ListServices(ctx context.Context, filter ServiceListFilter) ([]response.ServiceResponse, error)
	ListCategories(ctx context.Context) ([]response.ServiceCategoryResponse, error)
	ListProviders(ctx context.Context, specialty *string) ([]response.ServiceProviderResponse, error)
	CreateCategory(ctx context.Context, req *request.ServiceCategoryRequest) (*response.ServiceCategoryResponse, error)
	CreateService(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error)
	CreateProvider(ctx context.Context, req *request.ServiceProviderRequest) (*response.ServiceProviderResponse, error)
	SetProviderActive(ctx context.Context, providerID string, active bool) (*response.ServiceProviderResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

// ListServices returns active services with their category embedded.
// Categories are resolved once per listing, not per service.
func (s *catalogService) ListServices(ctx context.Context, filter ServiceListFilter) ([]response.ServiceResponse, error) {
	repoFilter := repository.ServiceFilter{
		CategorySlug: filter.CategorySlug,
		Popular:      filter.Popular,
	}

	if filter.CategoryID != nil {
		categoryID, err := uuid.Parse(*filter.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID")
		}
		repoFilter.CategoryID = &categoryID
	}

	services, err := s.repo.Service.FindActive(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("failed to get services")
	}

	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load categories for services", zap.Error(err))
		return nil, fmt.Errorf("failed to get services")
	}

	categoryByID := make(map[uuid.UUID]*entity.ServiceCategory, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = category
	}

	responses := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = response.ServiceToResponse(service, categoryByID[service.CategoryID])
	}

	return responses, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response.ServiceCategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}

	responses := make([]response.ServiceCategoryResponse, len(categories))
	for i, category := range categories {
		count, err := s.repo.Service.CountByCategory(ctx, category.ID)
		if err != nil {
			s.log.Warn("Failed to count services for category",
				zap.Error(err),
				zap.String("category_id", category.ID.String()))
			count = 0
		}
		responses[i] = response.CategoryToResponse(category, count)
	}

	return responses, nil
}

func (s *catalogService) ListProviders(ctx context.Context, specialty *string) ([]response.ServiceProviderResponse, error) {
	providers, err := s.repo.Provider.FindAll(ctx, true, specialty)
	if err != nil {
		s.log.Error("Failed to list providers", zap.Error(err))
		return nil, fmt.Errorf("failed to get providers")
	}

	return response.ProvidersToResponse(providers), nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *request.ServiceCategoryRequest) (*response.ServiceCategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Category.FindBySlug(ctx, req.Slug)
	if err != nil {
		s.log.Error("Failed to check category slug", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("failed to check slug")
	}
	if existing != nil {
		return nil, fmt.Errorf("category slug already exists")
	}

	category := &entity.ServiceCategory{
		BaseNoDelete: entity.NewBaseNoDelete(),
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Icon:         req.Icon,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("slug", req.Slug))
		return nil, err
	}

	s.log.Info("Service category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", req.Slug))

	resp := response.CategoryToResponse(category, 0)
	return &resp, nil
}

func (s *catalogService) CreateService(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to create service")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	isPopular := false
	if req.IsPopular != nil {
		isPopular = *req.IsPopular
	}

	service := &entity.Service{
		BaseNoDelete: entity.NewBaseNoDelete(),
		CategoryID:   categoryID,
		Name:         req.Name,
		Description:  req.Description,
		PriceFrom:    req.PriceFrom,
		IsActive:     isActive,
		IsPopular:    isPopular,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create service")
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("category_id", req.CategoryID))

	resp := response.ServiceToResponse(service, category)
	return &resp, nil
}

func (s *catalogService) CreateProvider(ctx context.Context, req *request.ServiceProviderRequest) (*response.ServiceProviderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create provider validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	provider := &entity.ServiceProvider{
		BaseNoDelete: entity.NewBaseNoDelete(),
		Name:         req.Name,
		Specialty:    req.Specialty,
		Phone:        req.Phone,
		Email:        req.Email,
		Rating:       req.Rating,
		IsActive:     isActive,
	}

	if err := s.repo.Provider.Create(ctx, provider); err != nil {
		s.log.Error("Failed to create provider", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create provider")
	}

	s.log.Info("Service provider created",
		zap.String("provider_id", provider.ID.String()),
		zap.String("specialty", req.Specialty))

	resp := response.ProviderToResponse(provider)
	return &resp, nil
}

func (s *catalogService) SetProviderActive(ctx context.Context, providerID string, active bool) (*response.ServiceProviderResponse, error) {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID")
	}

	provider, err := s.repo.Provider.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find provider", zap.Error(err), zap.String("provider_id", providerID))
		return nil, fmt.Errorf("failed to get provider")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider not found")
	}

	if err := s.repo.Provider.SetActive(ctx, id, active); err != nil {
		s.log.Error("Failed to set provider active flag",
			zap.Error(err),
			zap.String("provider_id", providerID),
			zap.Bool("active", active))
		return nil, fmt.Errorf("failed to update provider")
	}

	s.log.Info("Service provider active flag updated",
		zap.String("provider_id", providerID),
		zap.Bool("active", active))

	provider.IsActive = active
	resp := response.ProviderToResponse(provider)
	return &resp, nil
}
