package usecase

import (
	"context"
	"fmt"
	"time"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/data/repository"
	"realty-platform/internal/dto/request"
	"realty-platform/internal/dto/response"
	"realty-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PropertyListFilter mirrors the public search query parameters.
type PropertyListFilter struct {
	Type     *string
	Status   *string
	City     *string
	MinPrice *float64
	MaxPrice *float64
	Bedrooms *int
	BrokerID *string
}

type PropertyService interface {
	ListProperties(ctx context.Context, filter PropertyListFilter, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	GetProperty(ctx context.Context, propertyID string) (*response.PropertyDetailResponse, error)
	CreateProperty(ctx context.Context, brokerID uuid.UUID, req *request.PropertyRequest) (*response.PropertyResponse, error)
	UpdateProperty(ctx context.Context, callerID uuid.UUID, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error)
	DeleteProperty(ctx context.Context, callerID uuid.UUID, propertyID string) error
}

type propertyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPropertyService(repo *repository.Repository, log *zap.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log,
	}
}

func (s *propertyService) ListProperties(ctx context.Context, filter PropertyListFilter, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	repoFilter := repository.PropertyFilter{
		Type:     filter.Type,
		Status:   filter.Status,
		City:     filter.City,
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
		Bedrooms: filter.Bedrooms,
	}

	if filter.BrokerID != nil {
		brokerID, err := uuid.Parse(*filter.BrokerID)
		if err != nil {
			return nil, fmt.Errorf("invalid broker ID")
		}
		repoFilter.BrokerID = &brokerID
	}

	offset := utils.CalculateOffset(req.Page, req.PerPage)

	properties, err := s.repo.Property.FindAll(ctx, repoFilter, req.PerPage, offset)
	if err != nil {
		s.log.Error("Failed to list properties", zap.Error(err))
		return nil, fmt.Errorf("failed to get properties")
	}

	total, err := s.repo.Property.CountAll(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to count properties", zap.Error(err))
		return nil, fmt.Errorf("failed to count properties")
	}

	propertyResponses := make([]response.PropertyResponse, len(properties))
	for i, property := range properties {
		propertyResponses[i] = response.PropertyToResponse(property)
	}

	return response.NewPaginatedResponse(propertyResponses, req.Page, req.PerPage, total), nil
}

func (s *propertyService) GetProperty(ctx context.Context, propertyID string) (*response.PropertyDetailResponse, error) {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	broker, err := s.repo.User.FindByID(ctx, property.BrokerID)
	if err != nil {
		s.log.Warn("Failed to load broker for property",
			zap.Error(err),
			zap.String("property_id", propertyID))
		// Detail page still renders without the broker card.
	}

	resp := response.PropertyToDetailResponse(property, broker)
	return &resp, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, brokerID uuid.UUID, req *request.PropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.PropertyStatusAvailable
	if req.Status != "" {
		status = entity.PropertyStatus(req.Status)
	}

	currency := "MXN"
	if req.Currency != "" {
		currency = req.Currency
	}

	property := &entity.Property{
		Base:        entity.NewBase(),
		BrokerID:    brokerID,
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.PropertyType(req.Type),
		Status:      status,
		Price:       req.Price,
		Currency:    currency,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaM2:      req.AreaM2,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Amenities:   req.Amenities,
		Images:      req.Images,
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.log.Error("Failed to create property", zap.Error(err), zap.String("broker_id", brokerID.String()))
		return nil, fmt.Errorf("failed to create property")
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("broker_id", brokerID.String()))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, callerID uuid.UUID, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, callerID, property); err != nil {
		return nil, err
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = req.Description
	}
	if req.Type != nil {
		property.Type = entity.PropertyType(*req.Type)
	}
	if req.Status != nil {
		property.Status = entity.PropertyStatus(*req.Status)
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Currency != nil {
		property.Currency = *req.Currency
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.AreaM2 != nil {
		property.AreaM2 = *req.AreaM2
	}
	if req.Address != nil {
		property.Address = req.Address
	}
	if req.City != nil {
		property.City = req.City
	}
	if req.State != nil {
		property.State = req.State
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}
	if req.Images != nil {
		property.Images = req.Images
	}
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.log.Error("Failed to update property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to update property")
	}

	s.log.Info("Property updated", zap.String("property_id", propertyID))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, callerID uuid.UUID, propertyID string) error {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return err
	}

	if err := s.authorizeOwner(ctx, callerID, property); err != nil {
		return err
	}

	if err := s.repo.Property.Delete(ctx, property.ID); err != nil {
		s.log.Error("Failed to delete property", zap.Error(err), zap.String("property_id", propertyID))
		return fmt.Errorf("failed to delete property")
	}

	s.log.Info("Property deleted", zap.String("property_id", propertyID))
	return nil
}

func (s *propertyService) findProperty(ctx context.Context, propertyID string) (*entity.Property, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID")
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to get property")
	}
	if property == nil {
		return nil, fmt.Errorf("property not found")
	}

	return property, nil
}

// authorizeOwner allows the owning broker or an admin to mutate a listing.
func (s *propertyService) authorizeOwner(ctx context.Context, callerID uuid.UUID, property *entity.Property) error {
	if property.BrokerID == callerID {
		return nil
	}

	caller, err := s.repo.User.FindByID(ctx, callerID)
	if err != nil {
		s.log.Error("Failed to find caller", zap.Error(err), zap.String("caller_id", callerID.String()))
		return fmt.Errorf("failed to authorize")
	}
	if caller == nil || !caller.IsAdmin() {
		s.log.Warn("Forbidden property mutation",
			zap.String("caller_id", callerID.String()),
			zap.String("property_id", property.ID.String()))
		return fmt.Errorf("forbidden: not the listing owner")
	}

	return nil
}
