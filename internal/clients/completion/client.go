package completion

import (
	"chatbot-server/internal/config"
	"chatbot-server/internal/observability"
	"context"
	"fmt"
)

// New builds the client for the configured provider.
func New(ctx context.Context, cfg config.CompletionConfig, builder SystemMessageBuilder, logger *observability.Logger) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenRouter, "":
		client, err := NewOpenRouterClient(OpenRouterConfig{
			APIKey:   cfg.OpenRouterAPIKey,
			BaseURL:  cfg.OpenRouterBaseURL,
			Model:    cfg.OpenRouterModel,
			Referer:  cfg.OpenRouterReferer,
			AppTitle: cfg.OpenRouterAppTitle,
		}, builder, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, GeminiConfig{
			APIKey: cfg.GoogleAIAPIKey,
			Model:  cfg.GeminiModel,
		}, builder, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
