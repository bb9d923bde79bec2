package usecase

import (
	"context"
	"fmt"
	"strings"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/data/repository"
	"realty-platform/internal/dto/request"
	"realty-platform/internal/dto/response"
	"realty-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService interface {
	SubmitContact(ctx context.Context, req *request.ContactRequest) (*response.LeadResponse, error)
}

type contactService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContactService(repo *repository.Repository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log,
	}
}

// SubmitContact records an anonymous inquiry as a Lead and mirrors it into
// the broker's inbox as a self-addressed Message. The two writes are
// deliberately independent: a lead must survive even when the inbox write
// fails.
func (s *contactService) SubmitContact(ctx context.Context, req *request.ContactRequest) (*response.LeadResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Email or phone, at least one
	if req.Email == nil && req.Phone == nil {
		return nil, fmt.Errorf("validation failed: email or phone is required")
	}

	brokerID, err := uuid.Parse(req.BrokerID)
	if err != nil {
		return nil, fmt.Errorf("invalid broker ID")
	}

	// 3. Broker must exist and actually be a broker
	broker, err := s.repo.User.FindByID(ctx, brokerID)
	if err != nil {
		s.log.Error("Failed to find broker", zap.Error(err), zap.String("broker_id", req.BrokerID))
		return nil, fmt.Errorf("failed to submit contact")
	}
	if broker == nil {
		return nil, fmt.Errorf("broker not found")
	}
	if !broker.IsBroker() {
		return nil, fmt.Errorf("invalid broker: user is not a broker")
	}

	// 4. Optional property reference
	var property *entity.Property
	var propertyID *uuid.UUID
	if req.PropertyID != nil {
		id, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("invalid property ID")
		}

		property, err = s.repo.Property.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to find property", zap.Error(err), zap.String("property_id", *req.PropertyID))
			return nil, fmt.Errorf("failed to submit contact")
		}
		if property == nil {
			return nil, fmt.Errorf("property not found")
		}
		propertyID = &id
	}

	body := buildContactBody(req, property)

	// 5. Create the lead
	lead := &entity.Lead{
		BaseNoDelete: entity.NewBaseNoDelete(),
		BrokerID:     brokerID,
		PropertyID:   propertyID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      &body,
		Status:       entity.LeadStatusNew,
		Priority:     entity.LeadPriorityMedium,
		Source:       entity.LeadSourceWebForm,
	}

	if err := s.repo.Lead.Create(ctx, lead); err != nil {
		s.log.Error("Failed to create lead", zap.Error(err), zap.String("broker_id", req.BrokerID))
		return nil, fmt.Errorf("failed to submit contact")
	}

	// 6. Mirror into the broker's inbox. sender == receiver == broker is a
	// notification surrogate; there is no notification entity.
	message := &entity.Message{
		BaseSimple: entity.NewBaseSimple(),
		SenderID:   brokerID,
		ReceiverID: brokerID,
		Content:    body,
		IsRead:     false,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		// The lead already exists; log and keep going.
		s.log.Error("Failed to create inbox message for lead",
			zap.Error(err),
			zap.String("lead_id", lead.ID.String()),
			zap.String("broker_id", req.BrokerID))
	}

	s.log.Info("Contact submitted",
		zap.String("lead_id", lead.ID.String()),
		zap.String("broker_id", req.BrokerID))

	resp := response.LeadToResponse(lead)
	return &resp, nil
}

// buildContactBody renders the inquiry as the multi-section text shown in
// the broker's inbox.
func buildContactBody(req *request.ContactRequest, property *entity.Property) string {
	var b strings.Builder

	b.WriteString("Nueva solicitud de contacto\n")
	b.WriteString("\n--- Datos de contacto ---\n")
	b.WriteString(fmt.Sprintf("Nombre: %s\n", req.Name))
	if req.Email != nil {
		b.WriteString(fmt.Sprintf("Email: %s\n", *req.Email))
	}
	if req.Phone != nil {
		b.WriteString(fmt.Sprintf("Teléfono: %s\n", *req.Phone))
	}
	if req.ContactMethod != nil {
		b.WriteString(fmt.Sprintf("Medio preferido: %s\n", *req.ContactMethod))
	}

	if req.VisitDate != nil || req.VisitTime != nil {
		b.WriteString("\n--- Visita solicitada ---\n")
		if req.VisitDate != nil {
			b.WriteString(fmt.Sprintf("Fecha: %s\n", *req.VisitDate))
		}
		if req.VisitTime != nil {
			b.WriteString(fmt.Sprintf("Hora: %s\n", *req.VisitTime))
		}
	}

	if property != nil {
		b.WriteString("\n--- Propiedad ---\n")
		b.WriteString(fmt.Sprintf("ID: %s\n", property.ID.String()))
		b.WriteString(fmt.Sprintf("Título: %s\n", property.Title))
		b.WriteString(fmt.Sprintf("Precio: %.2f %s\n", property.Price, property.Currency))
	}

	if req.Message != nil && strings.TrimSpace(*req.Message) != "" {
		b.WriteString("\n--- Mensaje ---\n")
		b.WriteString(strings.TrimSpace(*req.Message))
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
