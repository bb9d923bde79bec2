package response

import (
	"time"

	"realty-platform/internal/data/entity"
)

type PropertyResponse struct {
	ID          string    `json:"id"`
	BrokerID    string    `json:"broker_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	AreaM2      float64   `json:"area_m2"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

// BrokerSummary is the broker card shown on a property detail page.
type BrokerSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	License *string `json:"license,omitempty"`
}

type PropertyDetailResponse struct {
	PropertyResponse
	UpdatedAt time.Time      `json:"updated_at"`
	Broker    *BrokerSummary `json:"broker,omitempty"`
}

func PropertyToResponse(property *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:          property.ID.String(),
		BrokerID:    property.BrokerID.String(),
		Title:       property.Title,
		Description: property.Description,
		Type:        string(property.Type),
		Status:      string(property.Status),
		Price:       property.Price,
		Currency:    property.Currency,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		AreaM2:      property.AreaM2,
		Address:     property.Address,
		City:        property.City,
		State:       property.State,
		Amenities:   property.Amenities,
		Images:      property.Images,
		CreatedAt:   property.CreatedAt,
	}
}

func PropertyToDetailResponse(property *entity.Property, broker *entity.User) PropertyDetailResponse {
	resp := PropertyDetailResponse{
		PropertyResponse: PropertyToResponse(property),
		UpdatedAt:        property.UpdatedAt,
	}

	if broker != nil {
		resp.Broker = &BrokerSummary{
			ID:      broker.ID.String(),
			Name:    broker.Name,
			Email:   broker.Email,
			Phone:   broker.Phone,
			Company: broker.Company,
			License: broker.License,
		}
	}

	return resp
}
