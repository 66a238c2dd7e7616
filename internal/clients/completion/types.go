package completion

import (
	"chatbot-server/internal/prompt"
	"context"
	"errors"
	"fmt"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	temperature     = 0.7
	maxOutputTokens = 1000
)

var (
	ErrEmptyResponse   = errors.New("empty response from completion provider")
	ErrMissingAPIKey   = errors.New("completion provider API key is required")
	ErrUnknownProvider = errors.New("unknown completion provider")
)

// Message is one turn of chat history sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UpstreamError is returned when the provider answers with a non-success status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion provider error: %d - %s", e.StatusCode, e.Body)
}

// Client sends a user turn with its history to a language-model provider and
// returns the reply text.
type Client interface {
	SendMessage(ctx context.Context, userText string, history []Message, callCtx *prompt.CallContext) (string, error)
	Model() string
	Close() error
}
