package usecase

import (
	"context"
	"fmt"
	"testing"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func TestSubmitContactCreatesLeadAndSelfMessage(t *testing.T) {
	repo, users, leads, messages := newFakeRepository()
	broker := seedUser(users, "broker@example.com", "secret123", entity.RoleBroker)

	svc := NewContactService(repo, zap.NewNop())

	resp, err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		BrokerID: broker.ID.String(),
		Name:     "Carlos Vega",
		Email:    strPtr("carlos@example.com"),
		Message:  strPtr("Me interesa la casa"),
	})
	require.NoError(t, err)

	// Exactly one lead, NEW / MEDIUM / WEB_FORM.
	require.Len(t, leads.leads, 1)
	lead := leads.leads[0]
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, entity.LeadPriorityMedium, lead.Priority)
	assert.Equal(t, entity.LeadSourceWebForm, lead.Source)
	assert.Equal(t, broker.ID, lead.BrokerID)
	assert.Equal(t, lead.ID.String(), resp.ID)

	// Exactly one mirrored inbox message, self-addressed to the broker.
	require.Len(t, messages.messages, 1)
	msg := messages.messages[0]
	assert.Equal(t, broker.ID, msg.SenderID)
	assert.Equal(t, broker.ID, msg.ReceiverID)
	assert.False(t, msg.IsRead)
	assert.Contains(t, msg.Content, "Nueva solicitud de contacto")
	assert.Contains(t, msg.Content, "Carlos Vega")
	assert.Contains(t, msg.Content, "Me interesa la casa")
}

func TestSubmitContactRequiresEmailOrPhone(t *testing.T) {
	repo, users, leads, _ := newFakeRepository()
	broker := seedUser(users, "broker@example.com", "secret123", entity.RoleBroker)

	svc := NewContactService(repo, zap.NewNop())

	_, err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		BrokerID: broker.ID.String(),
		Name:     "Carlos Vega",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email or phone is required")
	assert.Empty(t, leads.leads)
}

func TestSubmitContactRejectsNonBroker(t *testing.T) {
	repo, users, leads, _ := newFakeRepository()
	client := seedUser(users, "client@example.com", "secret123", entity.RoleClient)

	svc := NewContactService(repo, zap.NewNop())

	_, err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		BrokerID: client.ID.String(),
		Name:     "Carlos Vega",
		Email:    strPtr("carlos@example.com"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a broker")
	assert.Empty(t, leads.leads)
}

func TestSubmitContactLeadSurvivesMessageFailure(t *testing.T) {
	repo, users, leads, messages := newFakeRepository()
	broker := seedUser(users, "broker@example.com", "secret123", entity.RoleBroker)
	messages.createErr = fmt.Errorf("insert failed")

	svc := NewContactService(repo, zap.NewNop())

	resp, err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		BrokerID: broker.ID.String(),
		Name:     "Carlos Vega",
		Phone:    strPtr("5512345678"),
	})
	// The inbox write failing is not an intake failure.
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, leads.leads, 1)
	assert.Empty(t, messages.messages)
}

func TestSubmitContactUnknownPropertyRejected(t *testing.T) {
	repo, users, leads, _ := newFakeRepository()
	broker := seedUser(users, "broker@example.com", "secret123", entity.RoleBroker)

	svc := NewContactService(repo, zap.NewNop())

	_, err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		BrokerID:   broker.ID.String(),
		PropertyID: strPtr("6f1d4f0a-7f3e-4a7a-9d16-0f5d6a1a2b3c"),
		Name:       "Carlos Vega",
		Email:      strPtr("carlos@example.com"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property not found")
	assert.Empty(t, leads.leads)
}
