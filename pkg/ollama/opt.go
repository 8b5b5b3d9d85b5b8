package ollama

import (
	// Packages
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt configures a chat with tools
type Opt func(*opt)

type opt struct {
	maxIterations int
	tracer        trace.Tracer
	callback      func(tool.Result)
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultMaxIterations = 8
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opts ...Opt) opt {
	o := opt{maxIterations: DefaultMaxIterations}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithMaxIterations sets the number of rounds of tool calls before the chat
// gives up. Zero means tool calls are never dispatched, except for a call to
// the output tool, which always ends the chat.
func WithMaxIterations(n uint) Opt {
	return func(o *opt) {
		o.maxIterations = int(n)
	}
}

// WithTracer records one span covering the whole chat, including every round
// of tool calls. Spans for the calls themselves come from tool.WithTracer.
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opt) {
		o.tracer = tracer
	}
}

// WithToolCallback is called with every tool result, before it is reported
// back to the model
func WithToolCallback(fn func(tool.Result)) Opt {
	return func(o *opt) {
		o.callback = fn
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (o opt) report(result tool.Result) {
	if o.callback != nil {
		o.callback(result)
	}
}
