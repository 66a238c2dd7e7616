package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	MessageRoleSystem    = "system"
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type Message struct {
	ID              int64     `db:"id" json:"id"`
	ConversationID  int64     `db:"conversation_id" json:"conversationId"`
	Role            string    `db:"role" json:"role"`
	Content         string    `db:"content" json:"content"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	RegeneratedFrom *int64    `db:"regenerated_from" json:"regeneratedFrom"`
}

type CreateMessageParams struct {
	ConversationID  int64
	Role            string
	Content         string
	RegeneratedFrom *int64
}

const messageColumns = `id, conversation_id, role, content, created_at, regenerated_from`

const sqlCreateMessage = `
INSERT INTO messages (conversation_id, role, content, regenerated_from)
VALUES ($1, $2, $3, $4)
RETURNING ` + messageColumns

func (s *Store) CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error) {
	var message Message
	err := s.db.GetContext(ctx, &message, sqlCreateMessage,
		params.ConversationID, params.Role, params.Content, params.RegeneratedFrom)
	if err != nil {
		s.logger.Error(ctx, "failed to create message", err)
		return Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

const sqlGetMessageByID = `
SELECT ` + messageColumns + `
FROM messages
WHERE id = $1`

func (s *Store) GetMessageByID(ctx context.Context, id int64) (Message, error) {
	var message Message
	err := s.db.GetContext(ctx, &message, sqlGetMessageByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Message{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get message by ID", err)
		return Message{}, fmt.Errorf("failed to get message by ID: %w", err)
	}
	return message, nil
}

const sqlGetMessagesByConversationID = `
SELECT ` + messageColumns + `
FROM messages
WHERE conversation_id = $1
ORDER BY created_at ASC, id ASC`

// GetMessagesByConversationID returns the conversation's messages oldest first.
func (s *Store) GetMessagesByConversationID(ctx context.Context, conversationID int64) ([]Message, error) {
	messages := []Message{}
	err := s.db.SelectContext(ctx, &messages, sqlGetMessagesByConversationID, conversationID)
	if err != nil {
		s.logger.Error(ctx, "failed to get messages by conversation ID", err)
		return nil, fmt.Errorf("failed to get messages by conversation ID: %w", err)
	}
	return messages, nil
}

const sqlGetMessagesByRegeneratedFrom = `
SELECT ` + messageColumns + `
FROM messages
WHERE regenerated_from = $1
ORDER BY created_at ASC, id ASC`

// GetMessagesByRegeneratedFrom returns every message regenerated from the given message.
func (s *Store) GetMessagesByRegeneratedFrom(ctx context.Context, messageID int64) ([]Message, error) {
	messages := []Message{}
	err := s.db.SelectContext(ctx, &messages, sqlGetMessagesByRegeneratedFrom, messageID)
	if err != nil {
		s.logger.Error(ctx, "failed to get regenerated messages", err)
		return nil, fmt.Errorf("failed to get regenerated messages: %w", err)
	}
	return messages, nil
}
