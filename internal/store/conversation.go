package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const DefaultConversationTitle = "New Conversation"

type Conversation struct {
	ID           int64     `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	Title        *string   `db:"title" json:"title"`
	SystemPrompt *string   `db:"system_prompt" json:"systemPrompt"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
	Archived     bool      `db:"archived" json:"archived"`
}

type CreateConversationParams struct {
	UserID       string
	Title        *string
	SystemPrompt *string
}

// UpdateConversationParams carries a partial update; nil fields are left unchanged.
type UpdateConversationParams struct {
	Title    *string
	Archived *bool
}

const conversationColumns = `id, user_id, title, system_prompt, created_at, updated_at, archived`

const sqlCreateConversation = `
INSERT INTO conversations (user_id, title, system_prompt)
VALUES ($1, $2, $3)
RETURNING ` + conversationColumns

// CreateConversation inserts a conversation. A missing title falls back to DefaultConversationTitle.
func (s *Store) CreateConversation(ctx context.Context, params CreateConversationParams) (Conversation, error) {
	title := params.Title
	if title == nil || *title == "" {
		defaultTitle := DefaultConversationTitle
		title = &defaultTitle
	}

	var conversation Conversation
	err := s.db.GetContext(ctx, &conversation, sqlCreateConversation, params.UserID, title, params.SystemPrompt)
	if err != nil {
		s.logger.Error(ctx, "failed to create conversation", err)
		return Conversation{}, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conversation, nil
}

const sqlGetConversationByID = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE id = $1`

func (s *Store) GetConversationByID(ctx context.Context, id int64) (Conversation, error) {
	var conversation Conversation
	err := s.db.GetContext(ctx, &conversation, sqlGetConversationByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversation{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get conversation by ID", err)
		return Conversation{}, fmt.Errorf("failed to get conversation by ID: %w", err)
	}
	return conversation, nil
}

const sqlGetConversationsByUserID = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE user_id = $1 AND archived = FALSE
ORDER BY updated_at DESC, id DESC`

// GetConversationsByUserID returns the user's non-archived conversations, most recently updated first.
func (s *Store) GetConversationsByUserID(ctx context.Context, userID string) ([]Conversation, error) {
	conversations := []Conversation{}
	err := s.db.SelectContext(ctx, &conversations, sqlGetConversationsByUserID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get conversations by user ID", err)
		return nil, fmt.Errorf("failed to get conversations by user ID: %w", err)
	}
	return conversations, nil
}

const sqlUpdateConversation = `
UPDATE conversations
SET title = COALESCE($2, title),
    archived = COALESCE($3, archived),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + conversationColumns

// UpdateConversation applies a partial update and always bumps updated_at.
func (s *Store) UpdateConversation(ctx context.Context, id int64, params UpdateConversationParams) (Conversation, error) {
	var conversation Conversation
	err := s.db.GetContext(ctx, &conversation, sqlUpdateConversation, id, params.Title, params.Archived)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversation{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update conversation", err)
		return Conversation{}, fmt.Errorf("failed to update conversation: %w", err)
	}
	return conversation, nil
}

const sqlTouchConversation = `
UPDATE conversations
SET updated_at = NOW()
WHERE id = $1
RETURNING ` + conversationColumns

// TouchConversation bumps updated_at after a message is appended.
func (s *Store) TouchConversation(ctx context.Context, id int64) (Conversation, error) {
	var conversation Conversation
	err := s.db.GetContext(ctx, &conversation, sqlTouchConversation, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversation{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to touch conversation", err)
		return Conversation{}, fmt.Errorf("failed to touch conversation: %w", err)
	}
	return conversation, nil
}

const sqlDeleteMessagesByConversationID = `
DELETE FROM messages
WHERE conversation_id = $1`

const sqlDeleteConversation = `
DELETE FROM conversations
WHERE id = $1
RETURNING ` + conversationColumns

// DeleteConversation removes the conversation and all of its messages in one transaction.
// Returns ErrNotFound when no conversation had the given id.
func (s *Store) DeleteConversation(ctx context.Context, id int64) (Conversation, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Conversation{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sqlDeleteMessagesByConversationID, id); err != nil {
		s.logger.Error(ctx, "failed to delete conversation messages", err)
		return Conversation{}, fmt.Errorf("failed to delete conversation messages: %w", err)
	}

	var conversation Conversation
	if err := tx.GetContext(ctx, &conversation, sqlDeleteConversation, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversation{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to delete conversation", err)
		return Conversation{}, fmt.Errorf("failed to delete conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Conversation{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return conversation, nil
}
