package tool

import (
	// Packages
	schema "github.com/mutablelogic/go-llm-toolcall/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Descriptor advertises a tool to the model
type Descriptor struct {
	Type     string       `json:"type"`
	Function FunctionInfo `json:"function"`
}

// FunctionInfo is the callable part of a descriptor
type FunctionInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  schema.Document `json:"parameters"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	typeFunction = "function"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DescriptorFor returns a descriptor whose parameters are projected from
// the type P. It panics if P cannot be described as a schema.
func DescriptorFor[P any](name, description string) Descriptor {
	return NewDescriptor(name, description, schema.MustFor[P]())
}

// NewDescriptor returns a descriptor with a pre-built parameter schema
func NewDescriptor(name, description string, parameters schema.Document) Descriptor {
	return Descriptor{
		Type: typeFunction,
		Function: FunctionInfo{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d Descriptor) String() string {
	return types.Stringify(d)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (d Descriptor) Name() string {
	return d.Function.Name
}

func (d Descriptor) Description() string {
	return d.Function.Description
}

func (d Descriptor) Parameters() schema.Document {
	return d.Function.Parameters
}
