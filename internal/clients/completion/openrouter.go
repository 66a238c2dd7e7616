package completion

import (
	"bytes"
	"chatbot-server/internal/observability"
	"chatbot-server/internal/prompt"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// SystemMessageBuilder renders the system message placed first in every request.
type SystemMessageBuilder interface {
	BuildSystemMessage(callCtx *prompt.CallContext) (string, error)
}

type OpenRouterConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Referer  string
	AppTitle string
}

// OpenRouterClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenRouterClient struct {
	client  openai.Client
	model   string
	builder SystemMessageBuilder
	logger  *observability.Logger
}

func NewOpenRouterClient(cfg OpenRouterConfig, builder SystemMessageBuilder, logger *observability.Logger) (*OpenRouterClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	if cfg.AppTitle != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.AppTitle))
	}

	logger.Info(context.Background(), fmt.Sprintf("OpenRouter client initialized with model %s", cfg.Model))

	return &OpenRouterClient{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		builder: builder,
		logger:  logger,
	}, nil
}

func (c *OpenRouterClient) Model() string {
	return c.model
}

func (c *OpenRouterClient) Close() error {
	return nil
}

func (c *OpenRouterClient) SendMessage(ctx context.Context, userText string, history []Message, callCtx *prompt.CallContext) (string, error) {
	systemMessage, err := c.builder.BuildSystemMessage(callCtx)
	if err != nil {
		return "", fmt.Errorf("failed to build system message: %w", err)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemMessage))
	for _, m := range history {
		messages = append(messages, toOpenAIMessage(m))
	}
	messages = append(messages, openai.UserMessage(userText))

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "model", Value: c.model},
		observability.Field{Key: "message_count", Value: len(messages)},
	)
	c.logger.Debug(ctx, "Sending request to OpenRouter")

	var (
		upstream *UpstreamError
		received bool
	)
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxOutputTokens),
	}, option.WithMiddleware(captureUpstreamError(&upstream, &received)))
	if upstream != nil {
		c.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "status", Value: upstream.StatusCode},
		), "OpenRouter API error", upstream)
		return "", upstream
	}
	if err != nil && received && ctx.Err() == nil {
		c.logger.Error(ctx, "Malformed response from OpenRouter", err)
		return "", fmt.Errorf("%w: %v", ErrEmptyResponse, err)
	}
	if err != nil {
		c.logger.Error(ctx, "Error calling OpenRouter", err)
		return "", fmt.Errorf("failed to call completion provider: %w", err)
	}

	if completion == nil || len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		c.logger.Error(ctx, "Empty completion returned from OpenRouter", ErrEmptyResponse)
		return "", ErrEmptyResponse
	}

	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "response_model", Value: completion.Model},
		observability.Field{Key: "tokens", Value: completion.Usage.TotalTokens},
	), "Received response from OpenRouter")

	return completion.Choices[0].Message.Content, nil
}

func toOpenAIMessage(m Message) openai.ChatCompletionMessageParamUnion {
	switch m.Role {
	case RoleSystem:
		return openai.SystemMessage(m.Content)
	case RoleAssistant:
		return openai.AssistantMessage(m.Content)
	default:
		return openai.UserMessage(m.Content)
	}
}

// captureUpstreamError records non-2xx responses with their raw body so the
// status code survives bodies the SDK cannot decode. received is set once a
// 2xx response arrives.
func captureUpstreamError(dst **UpstreamError, received *bool) option.Middleware {
	return func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		resp, err := next(req)
		if err != nil || resp == nil {
			return resp, err
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			*received = true
			return resp, nil
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			body = []byte(readErr.Error())
		}
		resp.Body = io.NopCloser(bytes.NewReader(body))

		*dst = &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
		return resp, nil
	}
}
