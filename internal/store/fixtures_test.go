package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Conversation Fixtures ---

// ConversationOpts customizes conversation creation.
type ConversationOpts struct {
	UserID       string
	Title        *string
	SystemPrompt *string
	Archived     bool
}

// DefaultConversationOpts returns sensible defaults for conversation creation.
func DefaultConversationOpts() ConversationOpts {
	return ConversationOpts{
		UserID: "u1",
	}
}

// CreateConversation creates a test conversation with optional customization.
func (f *Fixtures) CreateConversation(opts ...func(*ConversationOpts)) Conversation {
	f.t.Helper()
	o := DefaultConversationOpts()
	for _, fn := range opts {
		fn(&o)
	}

	conversation, err := f.testDB.Store.CreateConversation(f.ctx, CreateConversationParams{
		UserID:       o.UserID,
		Title:        o.Title,
		SystemPrompt: o.SystemPrompt,
	})
	require.NoError(f.t, err, "failed to create test conversation")

	if o.Archived {
		archived := true
		conversation, err = f.testDB.Store.UpdateConversation(f.ctx, conversation.ID, UpdateConversationParams{Archived: &archived})
		require.NoError(f.t, err, "failed to archive test conversation")
	}
	return conversation
}

// --- Message Fixtures ---

// CreateMessage creates a message in the conversation with the given role.
func (f *Fixtures) CreateMessage(conversationID int64, role, content string) Message {
	f.t.Helper()
	message, err := f.testDB.Store.CreateMessage(f.ctx, CreateMessageParams{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	})
	require.NoError(f.t, err, "failed to create test message")
	return message
}

// SetConversationUpdatedAt rewrites updated_at so ordering tests are deterministic.
func (f *Fixtures) SetConversationUpdatedAt(id int64, at time.Time) {
	f.t.Helper()
	f.testDB.MustExec(f.t, `UPDATE conversations SET updated_at = $1 WHERE id = $2`, at, id)
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
