package response

import (
	"time"

	"realty-platform/internal/data/entity"
)

type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ServiceResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	PriceFrom   *float64         `json:"price_from,omitempty"`
	IsPopular   bool             `json:"is_popular"`
	Category    *CategorySummary `json:"category,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type ServiceCategoryResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	ServiceCount int64   `json:"service_count"`
}

type ServiceProviderResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Rating    float64 `json:"rating"`
	IsActive  bool    `json:"is_active"`
}

func ServiceToResponse(service *entity.Service, category *entity.ServiceCategory) ServiceResponse {
	resp := ServiceResponse{
		ID:          service.ID.String(),
		Name:        service.Name,
		Description: service.Description,
		PriceFrom:   service.PriceFrom,
		IsPopular:   service.IsPopular,
		CreatedAt:   service.CreatedAt,
	}

	if category != nil {
		resp.Category = &CategorySummary{
			ID:   category.ID.String(),
			Name: category.Name,
			Slug: category.Slug,
		}
	}

	return resp
}

func CategoryToResponse(category *entity.ServiceCategory, serviceCount int64) ServiceCategoryResponse {
	return ServiceCategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		Icon:         category.Icon,
		ServiceCount: serviceCount,
	}
}

func ProviderToResponse(provider *entity.ServiceProvider) ServiceProviderResponse {
	return ServiceProviderResponse{
		ID:        provider.ID.String(),
		Name:      provider.Name,
		Specialty: provider.Specialty,
		Phone:     provider.Phone,
		Email:     provider.Email,
		Rating:    provider.Rating,
		IsActive:  provider.IsActive,
	}
}

func ProvidersToResponse(providers []*entity.ServiceProvider) []ServiceProviderResponse {
	responses := make([]ServiceProviderResponse, len(providers))
	for i, provider := range providers {
		responses[i] = ProviderToResponse(provider)
	}
	return responses
}
