package usecase

import (
	"context"
	"testing"

	"realty-platform/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetStatsAggregatesCounts(t *testing.T) {
	repo, users, leads, messages := newFakeRepository()

	seedUser(users, "admin@example.com", "secret123", entity.RoleAdmin)
	broker := seedUser(users, "broker@example.com", "secret123", entity.RoleBroker)
	client := seedUser(users, "client@example.com", "secret123", entity.RoleClient)

	properties := repo.Property.(*fakePropertyRepo)
	seedProperty(properties, broker.ID)
	sold := seedProperty(properties, broker.ID)
	sold.Status = entity.PropertyStatusSold

	seedLead(leads, broker.ID)
	contacted := seedLead(leads, broker.ID)
	contacted.Status = entity.LeadStatusContacted

	seedMessage(messages, client.ID, broker.ID, "hola", false)
	seedMessage(messages, client.ID, broker.ID, "leído", true)

	svc := NewAdminService(repo, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Users.Total)
	assert.Equal(t, int64(1), stats.Users.Admins)
	assert.Equal(t, int64(1), stats.Users.Brokers)
	assert.Equal(t, int64(1), stats.Users.Clients)

	assert.Equal(t, int64(2), stats.Properties.Total)
	assert.Equal(t, int64(1), stats.Properties.Available)
	assert.Equal(t, int64(1), stats.Properties.Sold)

	assert.Equal(t, int64(2), stats.Leads.Total)
	assert.Equal(t, int64(1), stats.Leads.New)
	assert.Equal(t, int64(1), stats.Leads.Contacted)

	assert.Equal(t, int64(1), stats.Messaging.Unread)
}
