package usecase

import (
	"context"
	"testing"
	"time"

	"realty-platform/internal/data/entity"
	"realty-platform/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProperty(repo *fakePropertyRepo, brokerID uuid.UUID) *entity.Property {
	property := &entity.Property{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BrokerID: brokerID,
		Title:    "Casa en Coyoacán",
		Type:     entity.PropertyTypeHouse,
		Status:   entity.PropertyStatusAvailable,
		Price:    2500000,
		Currency: "MXN",
	}
	repo.properties[property.ID] = property
	return property
}

func TestCreatePropertyDefaults(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	broker := seedUser(users, "broker@example.com", "secret123", entity.RoleBroker)

	svc := NewPropertyService(repo, zap.NewNop())

	resp, err := svc.CreateProperty(context.Background(), broker.ID, &request.PropertyRequest{
		Title: "Departamento centro",
		Type:  "APARTMENT",
		Price: 1800000,
	})
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", resp.Status)
	assert.Equal(t, "MXN", resp.Currency)
	assert.Equal(t, broker.ID.String(), resp.BrokerID)
}

func TestUpdatePropertyOwnerOnly(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	owner := seedUser(users, "owner@example.com", "secret123", entity.RoleBroker)
	intruder := seedUser(users, "intruder@example.com", "secret123", entity.RoleBroker)

	properties := repo.Property.(*fakePropertyRepo)
	property := seedProperty(properties, owner.ID)

	svc := NewPropertyService(repo, zap.NewNop())

	newTitle := "Cambiado"
	_, err := svc.UpdateProperty(context.Background(), intruder.ID, property.ID.String(), &request.PropertyUpdateRequest{
		Title: &newTitle,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
	assert.Equal(t, "Casa en Coyoacán", properties.properties[property.ID].Title)

	// The owner succeeds.
	resp, err := svc.UpdateProperty(context.Background(), owner.ID, property.ID.String(), &request.PropertyUpdateRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cambiado", resp.Title)
}

func TestUpdatePropertyAdminBypassesOwnership(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	owner := seedUser(users, "owner@example.com", "secret123", entity.RoleBroker)
	admin := seedUser(users, "admin@example.com", "secret123", entity.RoleAdmin)

	properties := repo.Property.(*fakePropertyRepo)
	property := seedProperty(properties, owner.ID)

	svc := NewPropertyService(repo, zap.NewNop())

	status := "SOLD"
	resp, err := svc.UpdateProperty(context.Background(), admin.ID, property.ID.String(), &request.PropertyUpdateRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "SOLD", resp.Status)
}

func TestDeletePropertyOwnerGuard(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	owner := seedUser(users, "owner@example.com", "secret123", entity.RoleBroker)
	intruder := seedUser(users, "intruder@example.com", "secret123", entity.RoleBroker)

	properties := repo.Property.(*fakePropertyRepo)
	property := seedProperty(properties, owner.ID)

	svc := NewPropertyService(repo, zap.NewNop())

	err := svc.DeleteProperty(context.Background(), intruder.ID, property.ID.String())
	require.Error(t, err)
	assert.Empty(t, properties.deleted)

	err = svc.DeleteProperty(context.Background(), owner.ID, property.ID.String())
	require.NoError(t, err)
	assert.Contains(t, properties.deleted, property.ID)
}

func TestGetPropertyNotFound(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewPropertyService(repo, zap.NewNop())

	_, err := svc.GetProperty(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
