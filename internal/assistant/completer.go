package assistant

import (
	"context"
	"encoding/json"
)

// Chat wire roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ChatMessage is one message on the model wire. ToolCalls is set on
// assistant turns that request tools; ToolCallID links a tool result back
// to the call it answers.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is a model request to invoke one tool.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDef declares a callable tool to the model. Parameters is a JSON
// Schema object.
type ToolDef struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// Turn is one assistant response: either final content or a batch of tool
// calls to execute before asking again.
type Turn struct {
	Content   string
	ToolCalls []ToolCall
}

// Completer produces one assistant turn from the conversation so far.
// Implementations wrap a hosted model; tests use a scripted fake.
type Completer interface {
	Complete(ctx context.Context, msgs []ChatMessage, tools []ToolDef) (Turn, error)
}
