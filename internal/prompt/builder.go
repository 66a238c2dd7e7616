package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	serviceName     = "Customer Support System"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// CallContext is the per-call context rendered into the system message.
type CallContext struct {
	ConversationID int64  `json:"conversationId"`
	UserID         string `json:"userId,omitempty"`
	Regeneration   bool   `json:"regeneration,omitempty"`

	// SystemPrompt is the conversation's stored override. It is rendered as
	// its own section rather than as part of the context JSON.
	SystemPrompt string `json:"-"`
}

// Builder renders system messages from a SystemInstruction.
type Builder struct {
	instruction SystemInstruction
	now         func() time.Time
}

func NewBuilder(instruction SystemInstruction) *Builder {
	return &Builder{
		instruction: instruction,
		now:         time.Now,
	}
}

// NewBuilderWithClock is NewBuilder with a fixed time source.
func NewBuilderWithClock(instruction SystemInstruction, now func() time.Time) *Builder {
	return &Builder{
		instruction: instruction,
		now:         now,
	}
}

// Instruction returns the instruction record the builder renders.
func (b *Builder) Instruction() SystemInstruction {
	return b.instruction
}

// BuildSystemMessage renders the system message. It is rebuilt on every call so the
// timestamp reflects call time.
func (b *Builder) BuildSystemMessage(callCtx *CallContext) (string, error) {
	personality, err := json.MarshalIndent(b.instruction.Personality, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal personality: %w", err)
	}

	var contextLine string
	if callCtx != nil {
		encoded, err := json.Marshal(callCtx)
		if err != nil {
			return "", fmt.Errorf("failed to marshal call context: %w", err)
		}
		contextLine = "- Context: " + string(encoded)
	}

	var sb strings.Builder
	sb.WriteString(b.instruction.Instruction)
	sb.WriteString("\n\nPERSONALITY DETAILS:\n")
	sb.Write(personality)
	sb.WriteString("\n\nCONVERSATION RULES:\n")
	for i, rule := range b.instruction.Rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(rule)
	}
	sb.WriteString("\n\nCURRENT CONTEXT:\n")
	sb.WriteString("- Service: " + serviceName + "\n")
	sb.WriteString("- Timestamp: " + b.now().UTC().Format(timestampLayout) + "\n")
	sb.WriteString(contextLine)
	sb.WriteString("\n")

	if callCtx != nil && strings.TrimSpace(callCtx.SystemPrompt) != "" {
		sb.WriteString("\nCONVERSATION INSTRUCTIONS:\n")
		sb.WriteString(callCtx.SystemPrompt)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
