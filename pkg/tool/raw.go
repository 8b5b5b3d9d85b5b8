package tool

import (
	"context"
	"encoding/json"
	"errors"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Func is a tool which receives its arguments undecoded, for tools whose
// schema is not known at compile time
type Func func(ctx context.Context, arguments json.RawMessage) (string, error)

type rawCapability struct {
	handler
	fn Func
}

var _ Group = (*rawCapability)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// RegisterFunc returns a group containing a single tool with a pre-built
// descriptor
func RegisterFunc(descriptor Descriptor, fn Func, opts ...Opt) Group {
	if fn == nil {
		panic(llm.ErrBadParameter.Withf("function for %q is nil", descriptor.Name()))
	}
	return &rawCapability{
		handler: newHandler(descriptor, opts...),
		fn:      fn,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (c *rawCapability) Dispatch(ctx context.Context, call Function) (string, error) {
	return c.dispatch(ctx, call, func(ctx context.Context, call Function) (string, error) {
		text, err := c.fn(ctx, call.Arguments)
		if errors.Is(err, llm.ErrArgumentDecode) {
			return "", err
		} else if err != nil {
			return "", llm.ErrExecution.Wrap(err)
		}
		return text, nil
	})
}
