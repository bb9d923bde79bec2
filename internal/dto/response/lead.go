package response

import (
	"time"

	"realty-platform/internal/data/entity"
)

type LeadResponse struct {
	ID         string    `json:"id"`
	BrokerID   string    `json:"broker_id"`
	PropertyID *string   `json:"property_id,omitempty"`
	Name       string    `json:"name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Message    *string   `json:"message,omitempty"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func LeadToResponse(lead *entity.Lead) LeadResponse {
	resp := LeadResponse{
		ID:        lead.ID.String(),
		BrokerID:  lead.BrokerID.String(),
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Message:   lead.Message,
		Status:    string(lead.Status),
		Priority:  string(lead.Priority),
		Source:    string(lead.Source),
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}

	if lead.PropertyID != nil {
		propertyID := lead.PropertyID.String()
		resp.PropertyID = &propertyID
	}

	return resp
}

func LeadsToResponse(leads []*entity.Lead) []LeadResponse {
	responses := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = LeadToResponse(lead)
	}
	return responses
}
