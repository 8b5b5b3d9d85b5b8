package tool

import (
	"bytes"
	"context"
	"encoding/json"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	schema "github.com/mutablelogic/go-llm-toolcall/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	// OutputToolName is the well-known name for the structured output tool.
	OutputToolName = "submit_output"

	// OutputToolInstruction is appended to the system prompt when the
	// output tool is active, directing the model to call it with the final answer.
	OutputToolInstruction = "Use available tools to gather information. When ready, only call " + OutputToolName + " with your final answer, do not output any other text."

	outputToolDescription = "Submit your final structured output. Call this tool when you have completed your task and are ready to return the result."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewOutput returns a tool whose parameters are the given schema. When the
// model calls it, the arguments are the structured output, and they are
// returned compacted as the result. Use it where a response schema cannot be
// combined with tool calling.
func NewOutput(doc schema.Document, opts ...Opt) Group {
	return RegisterFunc(NewDescriptor(OutputToolName, outputToolDescription, doc), func(_ context.Context, arguments json.RawMessage) (string, error) {
		var buf bytes.Buffer
		if len(bytes.TrimSpace(arguments)) == 0 {
			return "null", nil
		} else if err := json.Compact(&buf, arguments); err != nil {
			return "", llm.ErrArgumentDecode.Wrap(err)
		}
		return buf.String(), nil
	}, opts...)
}
