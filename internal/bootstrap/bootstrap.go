package bootstrap

import (
	"chatbot-server/internal/clients/completion"
	"chatbot-server/internal/config"
	"chatbot-server/internal/observability"
	"chatbot-server/internal/prompt"
	"chatbot-server/internal/store"
	"context"
	"fmt"

	conversationsHandler "chatbot-server/internal/conversations/handler"
	conversationsProcessor "chatbot-server/internal/conversations/processor"
	messagesHandler "chatbot-server/internal/messages/handler"
	messagesProcessor "chatbot-server/internal/messages/processor"
	promptHandler "chatbot-server/internal/prompt/handler"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store      store.Store
	Logger     *observability.Logger
	Completion completion.Client

	// Handlers
	ConversationsHandler conversationsHandler.Handler
	MessagesHandler      messagesHandler.Handler
	PromptHandler        promptHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Ping(ctx); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize completion client
	builder := prompt.NewBuilder(prompt.DefaultSystemInstruction())
	deps.Completion, err = completion.New(ctx, cfg.Completion, builder, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	return WithClients(deps, logger), nil
}

// WithClients builds the processors and handlers on top of an initialized store and completion client.
func WithClients(deps *Dependencies, logger *observability.Logger) *Dependencies {
	conversationsProc := conversationsProcessor.New(&deps.Store, deps.Completion, logger)
	deps.ConversationsHandler = conversationsHandler.New(conversationsProc, logger)

	messagesProc := messagesProcessor.New(&deps.Store, deps.Completion, logger)
	deps.MessagesHandler = messagesHandler.New(messagesProc, logger)

	deps.PromptHandler = promptHandler.New(logger)

	return deps
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Completion != nil {
		if err := d.Completion.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close completion client", err)
		}
	}
	if d.Store.DB() != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close database", err)
		}
	}
}
