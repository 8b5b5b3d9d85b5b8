package tool

import (
	"bytes"
	"encoding/json"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Call is a tool call requested by the model
type Call struct {
	Function Function `json:"function"`
}

// Function names the tool to call and carries its arguments, which may be
// any JSON value
type Function struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCall returns a call with arguments encoded as JSON. Arguments which are
// already encoded (json.RawMessage or []byte) are used as-is.
func NewCall(name string, arguments any) (Call, error) {
	var raw json.RawMessage
	switch v := arguments.(type) {
	case nil:
		// No arguments
	case json.RawMessage:
		raw = v
	case []byte:
		raw = json.RawMessage(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return Call{}, llm.ErrBadParameter.Withf("failed to marshal arguments: %v", err)
		}
		raw = data
	}
	if len(raw) > 0 && !json.Valid(raw) {
		return Call{}, llm.ErrBadParameter.Withf("arguments for %q are not valid JSON", name)
	}
	return Call{Function: Function{Name: name, Arguments: raw}}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Call) String() string {
	return types.Stringify(c)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the name of the tool to call
func (c Call) Name() string {
	return c.Function.Name
}

// Decode unmarshals the arguments into v. Absent or null arguments leave v
// unchanged.
func (f Function) Decode(v any) error {
	if f.isEmpty() {
		return nil
	}
	return json.Unmarshal(f.Arguments, v)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (f Function) isEmpty() bool {
	data := bytes.TrimSpace(f.Arguments)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
