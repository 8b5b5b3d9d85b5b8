package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llm "github.com/mutablelogic/go-llm-toolcall"
	schema "github.com/mutablelogic/go-llm-toolcall/pkg/schema"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Chat request. Streaming is not supported, so Stream is always sent as false.
type ChatRequest struct {
	Model     string            `json:"model"`
	Messages  []Message         `json:"messages"`
	Tools     []tool.Descriptor `json:"tools,omitempty"`
	Format    *schema.Format    `json:"format,omitempty"`
	KeepAlive *schema.KeepAlive `json:"keep_alive,omitempty"`
	Options   map[string]any    `json:"options,omitempty"`
	Stream    bool              `json:"stream"`
}

// Chat response
type ChatResponse struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Message   Message   `json:"message"`
	Done      bool      `json:"done"`
	Reason    string    `json:"done_reason,omitempty"`
	Metrics
}

// Metrics
type Metrics struct {
	TotalDuration      time.Duration `json:"total_duration,omitempty"`
	LoadDuration       time.Duration `json:"load_duration,omitempty"`
	PromptEvalCount    int           `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration time.Duration `json:"prompt_eval_duration,omitempty"`
	EvalCount          int           `json:"eval_count,omitempty"`
	EvalDuration       time.Duration `json:"eval_duration,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ChatResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat sends a single chat request and returns the response
func (ollama *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, llm.ErrBadParameter.With("model is required")
	}
	req.Stream = false

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response ChatResponse
	if err := ollama.DoWithContext(ctx, payload, &response, client.OptPath("chat")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// ChatWithTools advertises the tools in the group to the model and dispatches
// the calls it makes, reporting results back, until the model answers without
// calling a tool. Unknown tools and undecodable arguments are reported to the
// model so it can correct itself; any other dispatch failure ends the chat.
// The request messages are not modified.
//
// When the group contains the output tool (tool.NewOutput) and the model
// calls it, the chat ends straight away: the call is dispatched on its own,
// and the response message is replaced by an assistant message whose content
// is the submitted output.
func (ollama *Client) ChatWithTools(ctx context.Context, req ChatRequest, g tool.Group, opts ...Opt) (_ *ChatResponse, err error) {
	o := applyOpts(opts...)
	if g == nil {
		g = tool.Empty()
	}

	// OTEL
	if o.tracer != nil {
		var endSpan func(error)
		ctx, endSpan = otel.StartSpan(o.tracer, ctx, "ChatWithTools",
			attribute.String("model", req.Model),
			attribute.Int("max_iterations", o.maxIterations),
		)
		defer func() { endSpan(err) }()
	}

	req.Tools = g.Enumerate(slices.Clone(req.Tools))
	req.Messages = slices.Clone(req.Messages)
	output := slices.Contains(tool.Names(g), tool.OutputToolName)
	for round := 0; ; round++ {
		response, err := ollama.Chat(ctx, req)
		if err != nil {
			return nil, err
		}
		if len(response.Message.ToolCalls) == 0 {
			return response, nil
		}

		// The output tool ends the chat with its arguments as the answer. If
		// they are rejected, only that failure is reported back.
		message := response.Message
		var results []tool.Result
		if call, exists := outputCall(message.ToolCalls); output && exists {
			results = tool.Run(ctx, g, call)
			if results[0].Err == nil {
				o.report(results[0])
				response.Message = Message{Role: RoleAssistant, Content: results[0].Text()}
				return response, nil
			}
			message.ToolCalls = []tool.Call{call}
		}
		if round >= o.maxIterations {
			return response, llm.ErrMaxIterations.Withf("after %d rounds", round)
		}

		// Dispatch the calls and report the results
		if results == nil {
			results = tool.Run(ctx, g, message.ToolCalls...)
		}
		req.Messages = append(req.Messages, message)
		for _, result := range results {
			o.report(result)
			if result.Err != nil && !recoverable(result.Err) {
				return nil, result.Err
			}
			req.Messages = append(req.Messages, ToolMessage(result))
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// outputCall returns the first call to the output tool
func outputCall(calls []tool.Call) (tool.Call, bool) {
	for _, call := range calls {
		if call.Name() == tool.OutputToolName {
			return call, true
		}
	}
	return tool.Call{}, false
}

// recoverable is true for dispatch errors the model can correct
func recoverable(err error) bool {
	if errors.Is(err, llm.ErrExecution) {
		return false
	}
	return errors.Is(err, llm.ErrUnknownTool) || errors.Is(err, llm.ErrArgumentDecode)
}
