package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	conversationsProcessor "chatbot-server/internal/conversations/processor"
	messagesProcessor "chatbot-server/internal/messages/processor"
	"chatbot-server/internal/store"
)

// apiClient talks to the chatbot REST API
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

type createConversationBody struct {
	UserID         string `json:"user_id"`
	Title          string `json:"title,omitempty"`
	InitialMessage string `json:"initial_message,omitempty"`
}

type sendMessageBody struct {
	Content string `json:"content"`
}

func (c *apiClient) createConversation(ctx context.Context, userID, title, firstMessage string) (conversationsProcessor.CreateConversationResult, error) {
	var out envelope[conversationsProcessor.CreateConversationResult]
	err := c.do(ctx, http.MethodPost, "/v1/chatbot/conversations", createConversationBody{
		UserID:         userID,
		Title:          title,
		InitialMessage: firstMessage,
	}, &out)
	return out.Data, err
}

func (c *apiClient) sendMessage(ctx context.Context, conversationID int64, content string) (messagesProcessor.SendMessageResult, error) {
	var out envelope[messagesProcessor.SendMessageResult]
	path := fmt.Sprintf("/v1/chatbot/conversations/%d/messages", conversationID)
	err := c.do(ctx, http.MethodPost, path, sendMessageBody{Content: content}, &out)
	return out.Data, err
}

func (c *apiClient) regenerate(ctx context.Context, messageID int64) (messagesProcessor.RegenerateMessageResult, error) {
	var out envelope[messagesProcessor.RegenerateMessageResult]
	path := fmt.Sprintf("/v1/chatbot/messages/%d/regenerate", messageID)
	err := c.do(ctx, http.MethodPost, path, nil, &out)
	return out.Data, err
}

func (c *apiClient) history(ctx context.Context, conversationID int64) ([]store.Message, error) {
	var out envelope[conversationsProcessor.ConversationWithMessages]
	path := fmt.Sprintf("/v1/chatbot/conversations/%d", conversationID)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Data.Messages, err
}

func (c *apiClient) do(ctx context.Context, method, path string, body any, out interface{ failure() error }) error {
	var reader bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reader).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	return out.failure()
}

func (e *envelope[T]) failure() error {
	if e.Success {
		return nil
	}
	if e.Details != "" {
		return fmt.Errorf("%s: %s", e.Error, e.Details)
	}
	return fmt.Errorf("%s", e.Error)
}
