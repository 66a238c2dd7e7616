package processor

import (
	"chatbot-server/internal/clients/completion"
	"chatbot-server/internal/observability"
	"chatbot-server/internal/prompt"
	"chatbot-server/internal/store"
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrUserIDRequired       = errors.New("user_id is required")
)

type ConversationProcessor struct {
	store     ConversationStore
	completer Completer
	logger    *observability.Logger
}

func New(store ConversationStore, completer Completer, logger *observability.Logger) ConversationProcessor {
	return ConversationProcessor{
		store:     store,
		completer: completer,
		logger:    logger,
	}
}

// CreateConversationRequest represents the input for creating a conversation
type CreateConversationRequest struct {
	UserID         string
	Title          *string
	SystemPrompt   *string
	InitialMessage *string
}

// CreateConversationResult holds the new conversation and, when an initial
// message was sent, the user and assistant messages.
type CreateConversationResult struct {
	Conversation store.Conversation `json:"conversation"`
	Messages     []store.Message    `json:"messages,omitempty"`
}

// ConversationWithMessages is a conversation and its messages, oldest first.
type ConversationWithMessages struct {
	Conversation store.Conversation `json:"conversation"`
	Messages     []store.Message    `json:"messages"`
}

// UpdateConversationRequest is a partial update; nil fields are left unchanged.
type UpdateConversationRequest struct {
	Title    *string
	Archived *bool
}

// CreateConversation creates a conversation. With an initial message it also stores the
// user turn, asks the completer for a reply and stores that reply. Rows written before a
// completion failure are kept.
func (p *ConversationProcessor) CreateConversation(ctx context.Context, req CreateConversationRequest) (CreateConversationResult, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return CreateConversationResult{}, ErrUserIDRequired
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: req.UserID})
	p.logger.Info(ctx, "Creating new conversation")

	conversation, err := p.store.CreateConversation(ctx, store.CreateConversationParams{
		UserID:       req.UserID,
		Title:        req.Title,
		SystemPrompt: req.SystemPrompt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create conversation", err)
		return CreateConversationResult{}, fmt.Errorf("failed to create conversation: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversation.ID})

	if req.InitialMessage == nil || *req.InitialMessage == "" {
		return CreateConversationResult{Conversation: conversation}, nil
	}

	userMessage, err := p.store.CreateMessage(ctx, store.CreateMessageParams{
		ConversationID: conversation.ID,
		Role:           store.MessageRoleUser,
		Content:        *req.InitialMessage,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create initial message", err)
		return CreateConversationResult{}, fmt.Errorf("failed to create initial message: %w", err)
	}

	callCtx := &prompt.CallContext{ConversationID: conversation.ID}
	if conversation.SystemPrompt != nil {
		callCtx.SystemPrompt = *conversation.SystemPrompt
	}

	reply, err := p.completer.SendMessage(ctx, *req.InitialMessage, []completion.Message{}, callCtx)
	if err != nil {
		p.logger.Error(ctx, "failed to get AI response", err)
		return CreateConversationResult{}, fmt.Errorf("failed to get AI response: %w", err)
	}

	assistantMessage, err := p.store.CreateMessage(ctx, store.CreateMessageParams{
		ConversationID: conversation.ID,
		Role:           store.MessageRoleAssistant,
		Content:        reply,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to save assistant message", err)
		return CreateConversationResult{}, fmt.Errorf("failed to save assistant message: %w", err)
	}

	return CreateConversationResult{
		Conversation: conversation,
		Messages:     []store.Message{userMessage, assistantMessage},
	}, nil
}

// ListConversations returns the user's non-archived conversations, most recently updated first.
func (p *ConversationProcessor) ListConversations(ctx context.Context, userID string) ([]store.Conversation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})
	p.logger.Info(ctx, "Fetching conversations")

	conversations, err := p.store.GetConversationsByUserID(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list conversations", err)
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (p *ConversationProcessor) GetConversation(ctx context.Context, id int64) (ConversationWithMessages, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: id})

	conversation, err := p.store.GetConversationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ConversationWithMessages{}, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to get conversation", err)
		return ConversationWithMessages{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	messages, err := p.store.GetMessagesByConversationID(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to get conversation messages", err)
		return ConversationWithMessages{}, fmt.Errorf("failed to get conversation messages: %w", err)
	}

	return ConversationWithMessages{
		Conversation: conversation,
		Messages:     messages,
	}, nil
}

// UpdateConversation applies the partial update. updatedAt is bumped even when nothing changed.
func (p *ConversationProcessor) UpdateConversation(ctx context.Context, id int64, req UpdateConversationRequest) (store.Conversation, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: id})
	p.logger.Info(ctx, "Updating conversation")

	conversation, err := p.store.UpdateConversation(ctx, id, store.UpdateConversationParams{
		Title:    req.Title,
		Archived: req.Archived,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Conversation{}, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to update conversation", err)
		return store.Conversation{}, fmt.Errorf("failed to update conversation: %w", err)
	}
	return conversation, nil
}

// DeleteConversation removes the conversation and its messages. Deleting an absent
// conversation succeeds.
func (p *ConversationProcessor) DeleteConversation(ctx context.Context, id int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: id})
	p.logger.Info(ctx, "Deleting conversation")

	if _, err := p.store.DeleteConversation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "Conversation already absent, nothing deleted")
			return nil
		}
		p.logger.Error(ctx, "failed to delete conversation", err)
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
