package completion

import (
	"chatbot-server/internal/observability"
	"chatbot-server/internal/prompt"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiModelRole = "model"

type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiClient sends completions through the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	builder SystemMessageBuilder
	logger  *observability.Logger
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig, builder SystemMessageBuilder, logger *observability.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info(ctx, fmt.Sprintf("Gemini client initialized with model %s", cfg.Model))

	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		builder: builder,
		logger:  logger,
	}, nil
}

func (g *GeminiClient) Model() string {
	return g.model
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func (g *GeminiClient) SendMessage(ctx context.Context, userText string, history []Message, callCtx *prompt.CallContext) (string, error) {
	systemMessage, err := g.builder.BuildSystemMessage(callCtx)
	if err != nil {
		return "", fmt.Errorf("failed to build system message: %w", err)
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemMessage)},
	}

	cs := model.StartChat()
	cs.History = toGeminiHistory(history)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "model", Value: g.model},
		observability.Field{Key: "message_count", Value: len(history) + 2},
	)
	g.logger.Debug(ctx, "Sending request to Gemini")

	resp, err := cs.SendMessage(ctx, genai.Text(userText))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			g.logger.Error(ctx, "Gemini blocked the request", err)
			return "", ErrEmptyResponse
		}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			upstream := &UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Body}
			if upstream.Body == "" {
				upstream.Body = apiErr.Message
			}
			g.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "status", Value: apiErr.Code},
			), "Gemini API error", upstream)
			return "", upstream
		}
		g.logger.Error(ctx, "Error calling Gemini", err)
		return "", fmt.Errorf("failed to call completion provider: %w", err)
	}

	text, ok := firstCandidateText(resp)
	if !ok {
		g.logger.Error(ctx, "No candidates returned from Gemini", ErrEmptyResponse)
		return "", ErrEmptyResponse
	}

	fields := []observability.Field{{Key: "response_model", Value: g.model}}
	if resp.UsageMetadata != nil {
		fields = append(fields, observability.Field{Key: "tokens", Value: resp.UsageMetadata.TotalTokenCount})
	}
	g.logger.Info(observability.WithFields(ctx, fields...), "Received response from Gemini")

	return text, nil
}

// toGeminiHistory maps chat history to Gemini roles. Gemini has no system role
// inside a chat, so system turns are sent as user turns.
func toGeminiHistory(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := RoleUser
		if m.Role == RoleAssistant {
			role = geminiModelRole
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return contents
}

// firstCandidateText concatenates the text parts of the first candidate.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", false
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), true
}
