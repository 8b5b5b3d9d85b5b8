package ollama

import (
	// Packages
	schema "github.com/mutablelogic/go-llm-toolcall/pkg/schema"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is one turn of a conversation
type Message struct {
	Role      string         `json:"role"` // system, user, assistant, tool
	Content   string         `json:"content"`
	Images    []schema.Image `json:"images,omitempty"`
	ToolCalls []tool.Call    `json:"tool_calls,omitempty"`
	ToolName  string         `json:"tool_name,omitempty"` // when role is tool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// UserMessage returns a user message with optional image attachments
func UserMessage(text string, images ...schema.Image) Message {
	return Message{Role: RoleUser, Content: text, Images: images}
}

// ToolMessage returns the message which reports a tool result to the model.
// A successful result is sent as the JSON string literal returned by the
// tool, and a failure is sent as the error text.
func ToolMessage(result tool.Result) Message {
	message := Message{Role: RoleTool, ToolName: result.Call.Name()}
	if result.Err != nil {
		message.Content = result.Err.Error()
	} else {
		message.Content = result.Value
	}
	return message
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return types.Stringify(m)
}
