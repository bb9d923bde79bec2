package entity

import (
	"github.com/google/uuid"
)

type Message struct {
	BaseSimple
	SenderID   uuid.UUID `db:"sender_id"`
	ReceiverID uuid.UUID `db:"receiver_id"`
	Content    string    `db:"content"`
	IsRead     bool      `db:"is_read"`
}

// MessageWithUsers is the inbox projection: a message joined with the
// display fields of both participants.
type MessageWithUsers struct {
	Message
	SenderName    string `db:"sender_name"`
	SenderEmail   string `db:"sender_email"`
	ReceiverName  string `db:"receiver_name"`
	ReceiverEmail string `db:"receiver_email"`
}
