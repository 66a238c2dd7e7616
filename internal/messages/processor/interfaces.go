package processor

import (
	"chatbot-server/internal/clients/completion"
	"chatbot-server/internal/prompt"
	"chatbot-server/internal/store"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// MessageStore defines the database operations required by MessageProcessor
type MessageStore interface {
	GetConversationByID(ctx context.Context, id int64) (store.Conversation, error)
	TouchConversation(ctx context.Context, id int64) (store.Conversation, error)
	CreateMessage(ctx context.Context, params store.CreateMessageParams) (store.Message, error)
	GetMessageByID(ctx context.Context, id int64) (store.Message, error)
	GetMessagesByConversationID(ctx context.Context, conversationID int64) ([]store.Message, error)
	GetMessagesByRegeneratedFrom(ctx context.Context, messageID int64) ([]store.Message, error)
}

// Completer produces the assistant reply for a user turn
type Completer interface {
	SendMessage(ctx context.Context, userText string, history []completion.Message, callCtx *prompt.CallContext) (string, error)
}
