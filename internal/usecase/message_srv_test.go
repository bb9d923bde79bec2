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

func seedMessage(messages *fakeMessageRepo, sender, receiver uuid.UUID, content string, read bool) *entity.Message {
	msg := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		IsRead:     read,
	}
	messages.messages = append(messages.messages, msg)
	return msg
}

func TestSendMessageBuildsHeaderAndTrims(t *testing.T) {
	repo, users, _, messages := newFakeRepository()
	sender := seedUser(users, "sender@example.com", "secret123", entity.RoleClient)
	receiver := seedUser(users, "receiver@example.com", "secret123", entity.RoleBroker)

	svc := NewMessageService(repo, zap.NewNop())

	resp, err := svc.SendMessage(context.Background(), sender.ID, &request.SendMessageRequest{
		ReceiverID: receiver.ID.String(),
		Content:    "  Hola, ¿sigue disponible?  ",
	})
	require.NoError(t, err)

	require.Len(t, messages.messages, 1)
	stored := messages.messages[0]
	assert.Contains(t, stored.Content, "De: Test User <sender@example.com>")
	assert.Contains(t, stored.Content, "Hola, ¿sigue disponible?")
	assert.NotContains(t, stored.Content, "disponible?  ")
	assert.Equal(t, stored.Content, resp.Content)
}

func TestSendMessageOverridesWinOverProfile(t *testing.T) {
	repo, users, _, messages := newFakeRepository()
	sender := seedUser(users, "sender@example.com", "secret123", entity.RoleClient)
	receiver := seedUser(users, "receiver@example.com", "secret123", entity.RoleBroker)

	svc := NewMessageService(repo, zap.NewNop())

	_, err := svc.SendMessage(context.Background(), sender.ID, &request.SendMessageRequest{
		ReceiverID: receiver.ID.String(),
		Content:    "Quiero agendar una visita",
		Name:       strPtr("Carlos Vega"),
		Email:      strPtr("carlos@example.com"),
		Phone:      strPtr("5512345678"),
	})
	require.NoError(t, err)

	stored := messages.messages[0]
	assert.Contains(t, stored.Content, "De: Carlos Vega <carlos@example.com> | Tel: 5512345678")
	assert.NotContains(t, stored.Content, "sender@example.com")
}

func TestSendMessageRejectsBlankContent(t *testing.T) {
	repo, users, _, messages := newFakeRepository()
	sender := seedUser(users, "sender@example.com", "secret123", entity.RoleClient)
	receiver := seedUser(users, "receiver@example.com", "secret123", entity.RoleBroker)

	svc := NewMessageService(repo, zap.NewNop())

	_, err := svc.SendMessage(context.Background(), sender.ID, &request.SendMessageRequest{
		ReceiverID: receiver.ID.String(),
		Content:    "   ",
	})
	require.Error(t, err)
	assert.Empty(t, messages.messages)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	sender := seedUser(users, "sender@example.com", "secret123", entity.RoleClient)

	svc := NewMessageService(repo, zap.NewNop())

	_, err := svc.SendMessage(context.Background(), sender.ID, &request.SendMessageRequest{
		ReceiverID: uuid.New().String(),
		Content:    "Hola",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receiver not found")
}

func TestGetThreadMarksReceivedMessagesRead(t *testing.T) {
	repo, users, _, messages := newFakeRepository()
	me := seedUser(users, "me@example.com", "secret123", entity.RoleBroker)
	other := seedUser(users, "other@example.com", "secret123", entity.RoleClient)

	seedMessage(messages, other.ID, me.ID, "first", false)
	seedMessage(messages, other.ID, me.ID, "second", false)
	mine := seedMessage(messages, me.ID, other.ID, "my reply", false)

	svc := NewMessageService(repo, zap.NewNop())

	thread, err := svc.GetThread(context.Background(), me.ID, other.ID)
	require.NoError(t, err)
	require.Len(t, thread, 3)

	// Messages I received are now read; my own outgoing message is not
	// touched.
	for _, msg := range messages.messages {
		if msg.ReceiverID == me.ID {
			assert.True(t, msg.IsRead)
		}
	}
	assert.False(t, mine.IsRead)

	// The returned payload reflects the mutation.
	for _, msg := range thread {
		if msg.ReceiverID == me.ID.String() {
			assert.True(t, msg.IsRead)
		}
	}

	// Unread count excludes the thread after the fetch.
	count, err := svc.UnreadCount(context.Background(), me.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUnreadCountOnlyCountsReceived(t *testing.T) {
	repo, users, _, messages := newFakeRepository()
	me := seedUser(users, "me@example.com", "secret123", entity.RoleBroker)
	other := seedUser(users, "other@example.com", "secret123", entity.RoleClient)

	seedMessage(messages, other.ID, me.ID, "unread", false)
	seedMessage(messages, other.ID, me.ID, "already read", true)
	seedMessage(messages, me.ID, other.ID, "sent by me", false)

	svc := NewMessageService(repo, zap.NewNop())

	count, err := svc.UnreadCount(context.Background(), me.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
