package processor

import (
	"chatbot-server/internal/clients/completion"
	"chatbot-server/internal/prompt"
	"chatbot-server/internal/store"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// ConversationStore defines the database operations required by ConversationProcessor
type ConversationStore interface {
	CreateConversation(ctx context.Context, params store.CreateConversationParams) (store.Conversation, error)
	GetConversationByID(ctx context.Context, id int64) (store.Conversation, error)
	GetConversationsByUserID(ctx context.Context, userID string) ([]store.Conversation, error)
	UpdateConversation(ctx context.Context, id int64, params store.UpdateConversationParams) (store.Conversation, error)
	DeleteConversation(ctx context.Context, id int64) (store.Conversation, error)
	CreateMessage(ctx context.Context, params store.CreateMessageParams) (store.Message, error)
	GetMessagesByConversationID(ctx context.Context, conversationID int64) ([]store.Message, error)
}

// Completer produces the assistant reply for a user turn
type Completer interface {
	SendMessage(ctx context.Context, userText string, history []completion.Message, callCtx *prompt.CallContext) (string, error)
}
