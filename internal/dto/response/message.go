package response

import (
	"time"

	"realty-platform/internal/data/entity"
)

type MessageResponse struct {
	ID            string    `json:"id"`
	SenderID      string    `json:"sender_id"`
	SenderName    string    `json:"sender_name"`
	SenderEmail   string    `json:"sender_email"`
	ReceiverID    string    `json:"receiver_id"`
	ReceiverName  string    `json:"receiver_name"`
	ReceiverEmail string    `json:"receiver_email"`
	Content       string    `json:"content"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

func MessageToResponse(msg *entity.MessageWithUsers) MessageResponse {
	return MessageResponse{
		ID:            msg.ID.String(),
		SenderID:      msg.SenderID.String(),
		SenderName:    msg.SenderName,
		SenderEmail:   msg.SenderEmail,
		ReceiverID:    msg.ReceiverID.String(),
		ReceiverName:  msg.ReceiverName,
		ReceiverEmail: msg.ReceiverEmail,
		Content:       msg.Content,
		IsRead:        msg.IsRead,
		CreatedAt:     msg.CreatedAt,
	}
}

func MessagesToResponse(messages []*entity.MessageWithUsers) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = MessageToResponse(msg)
	}
	return responses
}
