package schema

import (
	"bytes"
	"encoding/json"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Format constrains the shape of the final response: either any JSON value,
// or JSON which conforms to a schema. The zero value is plain JSON.
type Format struct {
	schema Document
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	formatJSON = "json"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// FormatJSON requests an unconstrained JSON response
func FormatJSON() Format {
	return Format{}
}

// FormatSchema requests a JSON response conforming to the document
func FormatSchema(doc Document) Format {
	return Format{schema: doc}
}

// FormatFor requests a JSON response conforming to the type T
func FormatFor[T any]() (Format, error) {
	doc, err := For[T]()
	if err != nil {
		return Format{}, err
	}
	return FormatSchema(doc), nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Format) String() string {
	if f.IsJSON() {
		return formatJSON
	}
	return f.schema.String()
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsJSON returns true if the response is unconstrained JSON
func (f Format) IsJSON() bool {
	return f.schema == nil
}

// Schema returns the constraining document, or nil for plain JSON
func (f Format) Schema() Document {
	return f.schema
}

func (f Format) MarshalJSON() ([]byte, error) {
	if f.IsJSON() {
		return json.Marshal(formatJSON)
	}
	return json.Marshal(f.schema)
}

func (f *Format) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		} else if value != formatJSON {
			return llm.ErrBadParameter.Withf("format %q unsupported", value)
		}
		f.schema = nil
		return nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	} else if doc == nil {
		return llm.ErrBadParameter.With("format schema is null")
	}
	f.schema = doc
	return nil
}
