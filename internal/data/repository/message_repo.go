package repository

import (
	"context"
	"fmt"

	"realty-platform/internal/data/entity"
	"realty-platform/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.MessageWithUsers, error)
	FindThread(ctx context.Context, userID, otherUserID uuid.UUID) ([]*entity.MessageWithUsers, error)
	MarkThreadRead(ctx context.Context, receiverID, senderID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	CountAllUnread(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

const messageWithUsersColumns = `
	m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at,
	s.name AS sender_name, s.email AS sender_email,
	r.name AS receiver_name, r.email AS receiver_email`

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("sender_id", message.SenderID.String()),
			zap.String("receiver_id", message.ReceiverID.String()),
		)
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// FindAllForUser lists every message the user sent or received, newest first.
func (r *messageRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.MessageWithUsers, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users r ON r.id = m.receiver_id
		WHERE m.sender_id = $1 OR m.receiver_id = $1
		ORDER BY m.created_at DESC
	`, messageWithUsersColumns)

	return r.queryMessages(ctx, query, userID)
}

// FindThread lists the conversation between two users, oldest first.
func (r *messageRepository) FindThread(ctx context.Context, userID, otherUserID uuid.UUID) ([]*entity.MessageWithUsers, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users r ON r.id = m.receiver_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC
	`, messageWithUsersColumns)

	return r.queryMessages(ctx, query, userID, otherUserID)
}

func (r *messageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]*entity.MessageWithUsers, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query messages", zap.Error(err))
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.MessageWithUsers
	for rows.Next() {
		var msg entity.MessageWithUsers
		err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Content,
			&msg.IsRead,
			&msg.CreatedAt,
			&msg.SenderName,
			&msg.SenderEmail,
			&msg.ReceiverName,
			&msg.ReceiverEmail,
		)
		if err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate messages rows: %w", err)
	}

	return messages, nil
}

// MarkThreadRead flips is_read on every unread message sender→receiver.
// Read messages are never reverted to unread.
func (r *messageRepository) MarkThreadRead(ctx context.Context, receiverID, senderID uuid.UUID) (int64, error) {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE
	`

	result, err := r.db.Exec(ctx, query, receiverID, senderID)
	if err != nil {
		r.log.Error("Failed to mark thread read",
			zap.Error(err),
			zap.String("receiver_id", receiverID.String()),
			zap.String("sender_id", senderID.String()),
		)
		return 0, fmt.Errorf("mark thread read: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *messageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = FALSE`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting unread messages",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count unread messages: %w", err)
	}

	return count, nil
}

func (r *messageRepository) CountAllUnread(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE is_read = FALSE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting all unread messages", zap.Error(err))
		return 0, fmt.Errorf("count all unread messages: %w", err)
	}

	return count, nil
}
