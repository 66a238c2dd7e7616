//go:build integration
// +build integration

package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"chatbot-server/internal/bootstrap"
	"chatbot-server/internal/clients/completion"
	"chatbot-server/internal/config"
	"chatbot-server/internal/observability"
	"chatbot-server/internal/prompt"
	"chatbot-server/internal/server"
	"chatbot-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPrompt makes the stub provider answer with an upstream error.
const failingPrompt = "please fail upstream"

var (
	baseURL   string
	logger    *observability.Logger
	testStore store.Store
	setupErr  error

	// providerCalls counts chat-completion requests seen by the stub provider.
	providerCalls atomic.Int64
)

func TestMain(m *testing.M) {
	logger = observability.NewNop()
	ctx := context.Background()

	provider := httptest.NewServer(http.HandlerFunc(stubProvider))
	defer provider.Close()

	api, err := startAPI(ctx, provider.URL)
	if err != nil {
		setupErr = err
	} else {
		defer api.Close()
		baseURL = api.URL
	}

	code := m.Run()
	if testStore.DB() != nil {
		testStore.Close()
	}
	os.Exit(code)
}

// startAPI wires the full application against the test database and the stub provider.
func startAPI(ctx context.Context, providerURL string) (*httptest.Server, error) {
	var err error
	testStore, err = store.New(store.TestConnectionString(), logger)
	if err != nil {
		return nil, err
	}
	if err := testStore.Ping(ctx); err != nil {
		return nil, err
	}
	if err := store.MigrateForTests(testStore.DB()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cfg := &config.Config{
		Environment: "test",
		Completion: config.CompletionConfig{
			Provider:           config.ProviderOpenRouter,
			OpenRouterAPIKey:   "test-key",
			OpenRouterBaseURL:  providerURL,
			OpenRouterModel:    "test/model",
			OpenRouterReferer:  "http://localhost:3000",
			OpenRouterAppTitle: "Chatbot Microservice",
		},
	}

	deps := &bootstrap.Dependencies{Store: testStore, Logger: logger}
	deps.Completion, err = completion.New(ctx, cfg.Completion, prompt.NewBuilder(prompt.DefaultSystemInstruction()), logger)
	if err != nil {
		return nil, err
	}
	bootstrap.WithClients(deps, logger)

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	return httptest.NewServer(srv.Router()), nil
}

// stubProvider emulates the chat-completions endpoint, echoing the last user message.
func stubProvider(w http.ResponseWriter, r *http.Request) {
	providerCalls.Add(1)

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
		return
	}
	last := req.Messages[len(req.Messages)-1].Content

	w.Header().Set("Content-Type", "application/json")
	if last == failingPrompt {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"provider exploded"}}`))
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      fmt.Sprintf("chatcmpl-%d", providerCalls.Load()),
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   "test/model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message": map[string]any{
				"role":    "assistant",
				"content": fmt.Sprintf("Echo (%d turns): %s", len(req.Messages), last),
			},
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
}

// requireAPI skips the test when the test database is unreachable.
func requireAPI(t *testing.T) {
	t.Helper()
	if setupErr != nil {
		t.Skipf("integration environment unavailable: %v", setupErr)
	}
}

// makeRequest performs an HTTP request against the in-process API
func makeRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	client := &http.Client{Timeout: 10 * time.Second}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

// parseJSONResponse unmarshals the response body into v
func parseJSONResponse(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("Failed to parse JSON response: %v, body: %s", err, string(body))
	}
}

func assertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status code %d, got %d", expected, resp.StatusCode)
	}
}

// generateTestUserID returns a user id unique to this run
func generateTestUserID(prefix string) string {
	return fmt.Sprintf("%s-%d", strings.ToLower(prefix), time.Now().UnixNano())
}

// createConversation creates a conversation through the API and returns its data object
func createConversation(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	resp := POST(t, "/v1/chatbot/conversations").WithBody(body).Do().RequireStatus(http.StatusCreated)
	return resp.Data()
}

// countRows counts rows in a table matching a where clause
func countRows(t *testing.T, query string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, testStore.DB().Get(&n, query, args...))
	return n
}

// --- Testify-based Assertion Helpers ---

// APIResponse wraps an HTTP response for fluent assertions.
type APIResponse struct {
	t          *testing.T
	Response   *http.Response
	Body       []byte
	parsedJSON map[string]interface{}
}

// NewAPIResponse creates a new APIResponse wrapper.
func NewAPIResponse(t *testing.T, resp *http.Response, body []byte) *APIResponse {
	t.Helper()
	return &APIResponse{t: t, Response: resp, Body: body}
}

// RequireStatus asserts the response has the expected status code (fails test immediately if not).
func (r *APIResponse) RequireStatus(expected int) *APIResponse {
	r.t.Helper()
	require.Equal(r.t, expected, r.Response.StatusCode,
		"unexpected status code, body: %s", string(r.Body))
	return r
}

// AssertStatus asserts the response has the expected status code.
func (r *APIResponse) AssertStatus(expected int) *APIResponse {
	r.t.Helper()
	assert.Equal(r.t, expected, r.Response.StatusCode,
		"unexpected status code, body: %s", string(r.Body))
	return r
}

// JSON parses the response body as JSON and returns the parsed map.
func (r *APIResponse) JSON() map[string]interface{} {
	r.t.Helper()
	if r.parsedJSON == nil {
		r.parsedJSON = make(map[string]interface{})
		require.NoError(r.t, json.Unmarshal(r.Body, &r.parsedJSON),
			"failed to parse JSON response: %s", string(r.Body))
	}
	return r.parsedJSON
}

// Data returns the data object of a successful response.
func (r *APIResponse) Data() map[string]interface{} {
	r.t.Helper()
	data, ok := r.JSON()["data"].(map[string]interface{})
	require.True(r.t, ok, "expected data object in response: %s", string(r.Body))
	return data
}

// DataList returns the data array of a successful response.
func (r *APIResponse) DataList() []interface{} {
	r.t.Helper()
	data, ok := r.JSON()["data"].([]interface{})
	require.True(r.t, ok, "expected data array in response: %s", string(r.Body))
	return data
}

// AssertJSONField asserts a field exists and has the expected value.
func (r *APIResponse) AssertJSONField(field string, expected interface{}) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Contains(r.t, data, field, "field %s not found in response", field)
	if expected != nil {
		assert.Equal(r.t, expected, data[field], "field %s has unexpected value", field)
	}
	return r
}

// AssertError asserts the response is a failure carrying the given error message.
func (r *APIResponse) AssertError(message string) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Equal(r.t, false, data["success"], "expected success=false")
	assert.Equal(r.t, message, data["error"], "unexpected error message")
	return r
}

// --- Request Builder ---

// APIRequest helps build and execute API requests.
type APIRequest struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

// NewRequest creates a new API request builder.
func NewRequest(t *testing.T, method, path string) *APIRequest {
	t.Helper()
	return &APIRequest{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body.
func (r *APIRequest) WithBody(body interface{}) *APIRequest {
	r.body = body
	return r
}

// WithHeader adds a header to the request.
func (r *APIRequest) WithHeader(key, value string) *APIRequest {
	r.headers[key] = value
	return r
}

// Do executes the request and returns an APIResponse.
func (r *APIRequest) Do() *APIResponse {
	r.t.Helper()
	resp, body := makeRequest(r.t, r.method, r.path, r.body, r.headers)
	return NewAPIResponse(r.t, resp, body)
}

// --- Convenience Functions ---

// GET creates a GET request.
func GET(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodGet, path)
}

// POST creates a POST request.
func POST(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodPost, path)
}

// DELETE creates a DELETE request.
func DELETE(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodDelete, path)
}

// PATCH creates a PATCH request.
func PATCH(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodPatch, path)
}
