package apierrors

import (
	"errors"

	"chatbot-server/internal/clients/completion"
	conversationsProcessor "chatbot-server/internal/conversations/processor"
	messagesProcessor "chatbot-server/internal/messages/processor"
	"chatbot-server/internal/prompt"
	"chatbot-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var upstream *completion.UpstreamError

	switch {
	// Conversation processor errors
	case errors.Is(err, conversationsProcessor.ErrConversationNotFound):
		return NotFound(CodeConversationMissing, "Conversation not found", err)

	case errors.Is(err, conversationsProcessor.ErrUserIDRequired):
		return Validation("user_id query parameter is required")

	// Message processor errors
	case errors.Is(err, messagesProcessor.ErrConversationNotFound):
		return NotFound(CodeConversationMissing, "Conversation not found", err)

	case errors.Is(err, messagesProcessor.ErrMessageNotFound):
		return NotFound(CodeMessageMissing, "Message not found", err)

	case errors.Is(err, messagesProcessor.ErrNotAssistantMessage):
		return BadRequest(CodeInvalidRole, "Can only regenerate assistant messages", err)

	case errors.Is(err, messagesProcessor.ErrNoUserMessage):
		return BadRequest(CodeNoUserMessage, "No user message found to regenerate from", err)

	case errors.Is(err, messagesProcessor.ErrInvalidRole):
		return Validation("role must be user")

	// Prompt templates
	case errors.Is(err, prompt.ErrTemplateNotFound):
		return NotFound(CodeTemplateMissing, "Template not found", err)

	// Completion provider errors
	case errors.As(err, &upstream), errors.Is(err, completion.ErrEmptyResponse):
		return BadGateway(CodeAIServiceError, "AI service error", err)

	// Store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found", err)

	default:
		return InternalError(err)
	}
}
