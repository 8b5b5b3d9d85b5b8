package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	llm "github.com/mutablelogic/go-llm-toolcall"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is a capability which can be called by the model. The parameter type
// P is described to the model as a JSON schema and decoded from the call
// arguments, so its json tags define both.
type Tool[P any] interface {
	// Return the name of the tool, unique within a registry
	Name() string

	// Return the description of the tool
	Description() string

	// Call the tool with decoded parameters and return a textual result.
	// An error aborts the dispatch; to let the model handle a failure,
	// return it as text instead.
	Call(ctx context.Context, params P) (string, error)
}

// handler is shared by every single-capability group
type handler struct {
	descriptor Descriptor
	opts       opts
	validator  *jsonschema.Resolved
}

type capability[P any] struct {
	handler
	tool Tool[P]
}

var _ Group = (*capability[struct{}])(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Register returns a group containing a single tool. The descriptor is built
// once, here, and it panics if P cannot be described as a schema.
func Register[P any](t Tool[P], opts ...Opt) Group {
	if t == nil {
		panic(llm.ErrBadParameter.With("tool is nil"))
	}
	return &capability[P]{
		handler: newHandler(DescriptorFor[P](t.Name(), t.Description()), opts...),
		tool:    t,
	}
}

func newHandler(descriptor Descriptor, opts ...Opt) handler {
	h := handler{
		descriptor: descriptor,
		opts:       applyOpts(opts...),
	}
	if h.opts.validate {
		s, err := descriptor.Parameters().Schema()
		if err != nil {
			panic(err)
		} else if s != nil {
			resolved, err := s.Resolve(nil)
			if err != nil {
				panic(llm.ErrBadParameter.Withf("schema resolution failed for %q: %v", descriptor.Name(), err))
			}
			h.validator = resolved
		}
	}
	return h
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (h *handler) Enumerate(out []Descriptor) []Descriptor {
	return append(out, h.descriptor)
}

func (c *capability[P]) Dispatch(ctx context.Context, call Function) (string, error) {
	return c.dispatch(ctx, call, func(ctx context.Context, call Function) (string, error) {
		var params P
		if err := call.Decode(&params); err != nil {
			return "", llm.ErrArgumentDecode.Wrap(err)
		}
		text, err := c.tool.Call(ctx, params)
		if err != nil {
			return "", llm.ErrExecution.Wrap(err)
		}
		return text, nil
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// dispatch matches the name, validates the arguments, runs the tool and
// encodes its result as a JSON string
func (h *handler) dispatch(ctx context.Context, call Function, run func(context.Context, Function) (string, error)) (result string, err error) {
	if call.Name != h.descriptor.Name() {
		return "", llm.ErrUnknownTool.Withf("%q", call.Name)
	}

	// Trace the call
	ctx, endSpan := h.opts.startSpan(ctx, call.Name,
		attribute.String("arguments", string(call.Arguments)),
	)
	defer func() { endSpan(err) }()

	// Validate and run
	if err := h.validate(call); err != nil {
		return "", err
	}
	text, err := run(ctx, call)
	if err != nil {
		return "", err
	}
	return encodeResult(text)
}

func (h *handler) validate(call Function) error {
	if h.validator == nil || call.isEmpty() {
		return nil
	}
	var instance any
	if err := json.Unmarshal(call.Arguments, &instance); err != nil {
		return llm.ErrArgumentDecode.Wrap(err)
	}
	if err := h.validator.Validate(instance); err != nil {
		return llm.ErrArgumentDecode.Wrap(err)
	}
	return nil
}

// encodeResult returns the text as a JSON string literal, without escaping
// HTML characters
func encodeResult(text string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return "", llm.ErrInternalServerError.Withf("failed to encode result: %v", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// isUnknown returns true only for a name mismatch, never for a failure which
// happens to wrap one
func isUnknown(err error) bool {
	return errors.Is(err, llm.ErrUnknownTool) &&
		!errors.Is(err, llm.ErrArgumentDecode) &&
		!errors.Is(err, llm.ErrExecution)
}
