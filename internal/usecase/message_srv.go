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

type MessageService interface {
	ListMessages(ctx context.Context, userID uuid.UUID) ([]response.MessageResponse, error)
	SendMessage(ctx context.Context, senderID uuid.UUID, req *request.SendMessageRequest) (*response.MessageResponse, error)
	GetThread(ctx context.Context, userID, otherUserID uuid.UUID) ([]response.MessageResponse, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type messageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMessageService(repo *repository.Repository, log *zap.Logger) MessageService {
	return &messageService{
		repo: repo,
		log:  log,
	}
}

// ListMessages returns the caller's full inbox, newest first.
func (s *messageService) ListMessages(ctx context.Context, userID uuid.UUID) ([]response.MessageResponse, error) {
	messages, err := s.repo.Message.FindAllForUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list messages", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get messages")
	}

	return response.MessagesToResponse(messages), nil
}

func (s *messageService) SendMessage(ctx context.Context, senderID uuid.UUID, req *request.SendMessageRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("validation failed: content must not be empty")
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("invalid receiver ID")
	}

	sender, err := s.repo.User.FindByID(ctx, senderID)
	if err != nil {
		s.log.Error("Failed to find sender", zap.Error(err), zap.String("sender_id", senderID.String()))
		return nil, fmt.Errorf("failed to send message")
	}
	if sender == nil {
		return nil, fmt.Errorf("sender not found")
	}

	receiver, err := s.repo.User.FindByID(ctx, receiverID)
	if err != nil {
		s.log.Error("Failed to find receiver", zap.Error(err), zap.String("receiver_id", req.ReceiverID))
		return nil, fmt.Errorf("failed to send message")
	}
	if receiver == nil {
		return nil, fmt.Errorf("receiver not found")
	}

	body := strings.TrimSpace(buildMessageHeader(sender, req) + content)

	message := &entity.Message{
		BaseSimple: entity.NewBaseSimple(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    body,
		IsRead:     false,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		s.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("sender_id", senderID.String()),
			zap.String("receiver_id", req.ReceiverID))
		return nil, fmt.Errorf("failed to send message")
	}

	s.log.Info("Message sent",
		zap.String("message_id", message.ID.String()),
		zap.String("sender_id", senderID.String()),
		zap.String("receiver_id", req.ReceiverID))

	resp := response.MessageToResponse(&entity.MessageWithUsers{
		Message:       *message,
		SenderName:    sender.Name,
		SenderEmail:   sender.Email,
		ReceiverName:  receiver.Name,
		ReceiverEmail: receiver.Email,
	})
	return &resp, nil
}

// GetThread returns the conversation with otherUserID oldest first and, as
// a side effect of the read, marks every unread message the caller received
// from that user as read.
func (s *messageService) GetThread(ctx context.Context, userID, otherUserID uuid.UUID) ([]response.MessageResponse, error) {
	other, err := s.repo.User.FindByID(ctx, otherUserID)
	if err != nil {
		s.log.Error("Failed to find thread partner", zap.Error(err), zap.String("other_user_id", otherUserID.String()))
		return nil, fmt.Errorf("failed to get conversation")
	}
	if other == nil {
		return nil, fmt.Errorf("user not found")
	}

	messages, err := s.repo.Message.FindThread(ctx, userID, otherUserID)
	if err != nil {
		s.log.Error("Failed to get thread",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("other_user_id", otherUserID.String()))
		return nil, fmt.Errorf("failed to get conversation")
	}

	marked, err := s.repo.Message.MarkThreadRead(ctx, userID, otherUserID)
	if err != nil {
		s.log.Warn("Failed to mark thread read",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("other_user_id", otherUserID.String()))
	} else if marked > 0 {
		// Reflect the mutation in the returned payload.
		for _, msg := range messages {
			if msg.ReceiverID == userID && msg.SenderID == otherUserID {
				msg.IsRead = true
			}
		}
	}

	return response.MessagesToResponse(messages), nil
}

func (s *messageService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.repo.Message.CountUnread(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count unread messages", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("failed to count unread messages")
	}

	return count, nil
}

// buildMessageHeader reconstructs the sender contact block. Optional
// override fields in the request win over the stored profile.
func buildMessageHeader(sender *entity.User, req *request.SendMessageRequest) string {
	name := sender.Name
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name = strings.TrimSpace(*req.Name)
	}

	email := sender.Email
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email = strings.TrimSpace(*req.Email)
	}

	var phone string
	if sender.Phone != nil {
		phone = *sender.Phone
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		phone = strings.TrimSpace(*req.Phone)
	}

	header := fmt.Sprintf("De: %s <%s>", name, email)
	if phone != "" {
		header += fmt.Sprintf(" | Tel: %s", phone)
	}

	return header + "\n\n"
}
