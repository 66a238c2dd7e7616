package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error

	// Conversation operations
	CreateConversation(ctx context.Context, params CreateConversationParams) (Conversation, error)
	GetConversationByID(ctx context.Context, id int64) (Conversation, error)
	GetConversationsByUserID(ctx context.Context, userID string) ([]Conversation, error)
	UpdateConversation(ctx context.Context, id int64, params UpdateConversationParams) (Conversation, error)
	TouchConversation(ctx context.Context, id int64) (Conversation, error)
	DeleteConversation(ctx context.Context, id int64) (Conversation, error)

	// Message operations
	CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error)
	GetMessageByID(ctx context.Context, id int64) (Message, error)
	GetMessagesByConversationID(ctx context.Context, conversationID int64) ([]Message, error)
	GetMessagesByRegeneratedFrom(ctx context.Context, messageID int64) ([]Message, error)
}

var _ Storer = (*Store)(nil)
