package processor

import (
	"chatbot-server/internal/clients/completion"
	"chatbot-server/internal/observability"
	"chatbot-server/internal/prompt"
	"chatbot-server/internal/store"
	"context"
	"errors"
	"fmt"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotAssistantMessage  = errors.New("can only regenerate assistant messages")
	ErrNoUserMessage        = errors.New("no user message found to regenerate from")
	ErrInvalidRole          = errors.New("only user messages can be sent")
)

type MessageProcessor struct {
	store     MessageStore
	completer Completer
	logger    *observability.Logger
}

func New(store MessageStore, completer Completer, logger *observability.Logger) MessageProcessor {
	return MessageProcessor{
		store:     store,
		completer: completer,
		logger:    logger,
	}
}

// SendMessageRequest is a user turn. Role may be empty or "user".
type SendMessageRequest struct {
	Content string
	Role    string
}

type SendMessageResult struct {
	UserMessage      store.Message `json:"userMessage"`
	AssistantMessage store.Message `json:"assistantMessage"`
}

type RegenerateMessageResult struct {
	OriginalMessage store.Message `json:"originalMessage"`
	NewMessage      store.Message `json:"newMessage"`
}

// SendMessage stores the user turn, asks the completer for a reply with the prior
// history and stores the reply. The user message is kept if the completion fails.
func (p *MessageProcessor) SendMessage(ctx context.Context, conversationID int64, req SendMessageRequest) (SendMessageResult, error) {
	if req.Role != "" && req.Role != store.MessageRoleUser {
		return SendMessageResult{}, ErrInvalidRole
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversationID})
	p.logger.Info(ctx, "Sending message to conversation")

	conversation, err := p.store.GetConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SendMessageResult{}, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to get conversation", err)
		return SendMessageResult{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: conversation.UserID})

	history, err := p.store.GetMessagesByConversationID(ctx, conversationID)
	if err != nil {
		p.logger.Error(ctx, "failed to get conversation history", err)
		return SendMessageResult{}, fmt.Errorf("failed to get conversation history: %w", err)
	}

	userMessage, err := p.store.CreateMessage(ctx, store.CreateMessageParams{
		ConversationID: conversationID,
		Role:           store.MessageRoleUser,
		Content:        req.Content,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create user message", err)
		return SendMessageResult{}, fmt.Errorf("failed to create user message: %w", err)
	}

	reply, err := p.completer.SendMessage(ctx, req.Content, toCompletionHistory(history), callContext(conversation, false))
	if err != nil {
		p.logger.Error(ctx, "failed to get AI response", err)
		return SendMessageResult{}, fmt.Errorf("failed to get AI response: %w", err)
	}

	assistantMessage, err := p.store.CreateMessage(ctx, store.CreateMessageParams{
		ConversationID: conversationID,
		Role:           store.MessageRoleAssistant,
		Content:        reply,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to save assistant message", err)
		return SendMessageResult{}, fmt.Errorf("failed to save assistant message: %w", err)
	}

	if _, err := p.store.TouchConversation(ctx, conversationID); err != nil {
		p.logger.Error(ctx, "failed to update conversation timestamp", err)
		return SendMessageResult{}, fmt.Errorf("failed to update conversation timestamp: %w", err)
	}

	return SendMessageResult{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	}, nil
}

// RegenerateMessage asks for a new reply to the user turn that preceded an assistant
// message. The original message is left untouched; the new one points back to it.
func (p *MessageProcessor) RegenerateMessage(ctx context.Context, messageID int64) (RegenerateMessageResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "message_id", Value: messageID})
	p.logger.Info(ctx, "Regenerating message")

	original, err := p.store.GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RegenerateMessageResult{}, ErrMessageNotFound
		}
		p.logger.Error(ctx, "failed to get message", err)
		return RegenerateMessageResult{}, fmt.Errorf("failed to get message: %w", err)
	}

	if original.Role != store.MessageRoleAssistant {
		return RegenerateMessageResult{}, ErrNotAssistantMessage
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: original.ConversationID})

	conversation, err := p.store.GetConversationByID(ctx, original.ConversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RegenerateMessageResult{}, ErrConversationNotFound
		}
		p.logger.Error(ctx, "failed to get conversation", err)
		return RegenerateMessageResult{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	all, err := p.store.GetMessagesByConversationID(ctx, original.ConversationID)
	if err != nil {
		p.logger.Error(ctx, "failed to get conversation history", err)
		return RegenerateMessageResult{}, fmt.Errorf("failed to get conversation history: %w", err)
	}

	prefix := messagesBefore(all, original)

	lastUser, ok := lastUserMessage(prefix)
	if !ok {
		return RegenerateMessageResult{}, ErrNoUserMessage
	}

	reply, err := p.completer.SendMessage(ctx, lastUser.Content, toCompletionHistory(prefix), callContext(conversation, true))
	if err != nil {
		p.logger.Error(ctx, "failed to get AI response", err)
		return RegenerateMessageResult{}, fmt.Errorf("failed to get AI response: %w", err)
	}

	newMessage, err := p.store.CreateMessage(ctx, store.CreateMessageParams{
		ConversationID:  original.ConversationID,
		Role:            store.MessageRoleAssistant,
		Content:         reply,
		RegeneratedFrom: &original.ID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to save regenerated message", err)
		return RegenerateMessageResult{}, fmt.Errorf("failed to save regenerated message: %w", err)
	}

	if _, err := p.store.TouchConversation(ctx, original.ConversationID); err != nil {
		p.logger.Error(ctx, "failed to update conversation timestamp", err)
		return RegenerateMessageResult{}, fmt.Errorf("failed to update conversation timestamp: %w", err)
	}

	return RegenerateMessageResult{
		OriginalMessage: original,
		NewMessage:      newMessage,
	}, nil
}

// ListRegenerations returns the messages regenerated from the given message.
func (p *MessageProcessor) ListRegenerations(ctx context.Context, messageID int64) ([]store.Message, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "message_id", Value: messageID})

	if _, err := p.store.GetMessageByID(ctx, messageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		p.logger.Error(ctx, "failed to get message", err)
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	regenerations, err := p.store.GetMessagesByRegeneratedFrom(ctx, messageID)
	if err != nil {
		p.logger.Error(ctx, "failed to list regenerations", err)
		return nil, fmt.Errorf("failed to list regenerations: %w", err)
	}
	return regenerations, nil
}

// messagesBefore returns the messages ordered strictly before target. Equal
// timestamps are ordered by id.
func messagesBefore(messages []store.Message, target store.Message) []store.Message {
	prefix := make([]store.Message, 0, len(messages))
	for _, m := range messages {
		if m.ID == target.ID {
			continue
		}
		if m.CreatedAt.Before(target.CreatedAt) || (m.CreatedAt.Equal(target.CreatedAt) && m.ID < target.ID) {
			prefix = append(prefix, m)
		}
	}
	return prefix
}

func lastUserMessage(messages []store.Message) (store.Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == store.MessageRoleUser {
			return messages[i], true
		}
	}
	return store.Message{}, false
}

func toCompletionHistory(messages []store.Message) []completion.Message {
	history := make([]completion.Message, 0, len(messages))
	for _, m := range messages {
		history = append(history, completion.Message{Role: m.Role, Content: m.Content})
	}
	return history
}

func callContext(conversation store.Conversation, regeneration bool) *prompt.CallContext {
	callCtx := &prompt.CallContext{
		ConversationID: conversation.ID,
		UserID:         conversation.UserID,
		Regeneration:   regeneration,
	}
	if conversation.SystemPrompt != nil {
		callCtx.SystemPrompt = *conversation.SystemPrompt
	}
	return callCtx
}
