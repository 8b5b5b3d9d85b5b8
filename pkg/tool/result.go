package tool

import (
	"context"
	"encoding/json"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Result is the outcome of dispatching one call
type Result struct {
	Call  Call
	Value string
	Err   error
}

type resultMeta struct {
	Call  Call   `json:"call"`
	Value string `json:"result,omitempty"`
	Error string `json:"error,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run dispatches the calls one after another, in order, and returns one
// result per call. Calls after the context is done are not dispatched and
// carry the context error.
func Run(ctx context.Context, g Group, calls ...Call) []Result {
	results := make([]Result, len(calls))
	for i, call := range calls {
		results[i].Call = call
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		results[i].Value, results[i].Err = g.Dispatch(ctx, call.Function)
	}
	return results
}

// Text returns the result as plain text, decoding the JSON string literal
// returned by dispatch. Results which are not a string literal are returned
// unchanged.
func (r Result) Text() string {
	var text string
	if err := json.Unmarshal([]byte(r.Value), &text); err != nil {
		return r.Value
	}
	return text
}

///////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r Result) MarshalJSON() ([]byte, error) {
	meta := resultMeta{
		Call:  r.Call,
		Value: r.Value,
	}
	if r.Err != nil {
		meta.Error = r.Err.Error()
	}
	return json.Marshal(meta)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Result) String() string {
	return types.Stringify(r)
}
