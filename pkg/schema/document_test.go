package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	llm "github.com/mutablelogic/go-llm-toolcall"
	schema "github.com/mutablelogic/go-llm-toolcall/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type Customer struct {
	Name     string  `json:"name" jsonschema:"The customer name"`
	Billing  Address `json:"billing"`
	Shipping Address `json:"shipping"`
}

type ListNode struct {
	Value string    `json:"value"`
	Next  *ListNode `json:"next,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// countKey counts occurrences of a key anywhere in a tree
func countKey(node any, key string) int {
	count := 0
	switch v := node.(type) {
	case schema.Document:
		return countKey(map[string]any(v), key)
	case map[string]any:
		for k, child := range v {
			if k == key {
				count++
			}
			count += countKey(child, key)
		}
	case []any:
		for _, child := range v {
			count += countKey(child, key)
		}
	}
	return count
}

func property(doc map[string]any, path ...string) map[string]any {
	node := doc
	for _, name := range path {
		props, _ := node["properties"].(map[string]any)
		node, _ = props[name].(map[string]any)
	}
	return node
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_document_001(t *testing.T) {
	// Shared sub-shapes are inlined in place
	assert := assert.New(t)
	doc, err := schema.For[Customer]()
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("object", doc["type"])
	assert.Zero(countKey(doc, "$ref"))
	assert.Zero(countKey(doc, "definitions"))
	assert.Equal("object", property(doc, "billing")["type"])
	assert.Equal("object", property(doc, "shipping")["type"])
	assert.NotNil(property(doc, "shipping", "city"))
	assert.Equal("The customer name", property(doc, "name")["description"])
}

func Test_document_002(t *testing.T) {
	// The draft marker is added when missing
	assert := assert.New(t)
	doc := schema.MustFor[Address]()
	assert.Equal("http://json-schema.org/draft-07/schema#", doc["$schema"])
}

func Test_document_003(t *testing.T) {
	// References into definitions are inlined and the container renamed
	assert := assert.New(t)
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"home": {Ref: "#/definitions/Address"},
			"work": {Ref: "#/definitions/Address", Description: "Office"},
		},
		Definitions: map[string]*jsonschema.Schema{
			"Address": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"city": {Type: "string"},
				},
			},
		},
	}
	doc, err := schema.NewDocument(s)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Zero(countKey(doc, "$ref"))
	assert.Zero(countKey(doc, "definitions"))
	assert.Contains(doc, "$defs")
	assert.Equal("object", property(doc, "home")["type"])
	assert.Equal("string", property(doc, "home", "city")["type"])
	assert.Equal("Office", property(doc, "work")["description"])
	assert.Nil(property(doc, "home")["description"])
}

func Test_document_004(t *testing.T) {
	// Self reference terminates with no reference nodes
	assert := assert.New(t)
	s := &jsonschema.Schema{
		Ref: "#/definitions/Node",
		Definitions: map[string]*jsonschema.Schema{
			"Node": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"value": {Type: "integer"},
					"next":  {Ref: "#/definitions/Node"},
				},
			},
		},
	}
	doc, err := schema.NewDocument(s)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Zero(countKey(doc, "$ref"))
	assert.Zero(countKey(doc, "definitions"))
	assert.Contains(doc, "$defs")
	assert.Equal("object", doc["type"])
	assert.Equal("integer", property(doc, "value")["type"])
	assert.Equal(map[string]any{}, property(doc, "next"))
}

func Test_document_005(t *testing.T) {
	// Mutual references terminate
	assert := assert.New(t)
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"a": {Ref: "#/$defs/A"},
		},
		Defs: map[string]*jsonschema.Schema{
			"A": {Type: "object", Properties: map[string]*jsonschema.Schema{"b": {Ref: "#/$defs/B"}}},
			"B": {Type: "object", Properties: map[string]*jsonschema.Schema{"a": {Ref: "#/$defs/A"}}},
		},
	}
	doc, err := schema.NewDocument(s)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Zero(countKey(doc, "$ref"))
	assert.Equal("object", property(doc, "a", "b")["type"])
	assert.Equal(map[string]any{}, property(doc, "a", "b", "a"))
}

func Test_document_006(t *testing.T) {
	// Root self reference
	assert := assert.New(t)
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"child": {Ref: "#"},
		},
	}
	doc, err := schema.NewDocument(s)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Zero(countKey(doc, "$ref"))
	assert.Equal(map[string]any{}, property(doc, "child"))
}

func Test_document_007(t *testing.T) {
	// Unresolvable references are rejected
	assert := assert.New(t)
	_, err := schema.NewDocument(&jsonschema.Schema{Ref: "https://example.com/schema.json"})
	assert.Error(err)
	_, err = schema.NewDocument(&jsonschema.Schema{Ref: "#/definitions/Missing"})
	assert.Error(err)
	_, err = schema.NewDocument(nil)
	assert.Error(err)
}

func Test_document_008(t *testing.T) {
	// A root which is not an object is an invariant violation
	assert := assert.New(t)
	var doc schema.Document
	assert.Error(json.Unmarshal([]byte(`[1,2,3]`), &doc))
	assert.Panics(func() { schema.MustFor[chan int]() })
}

func Test_document_009(t *testing.T) {
	// JSON documents are projected on decode
	assert := assert.New(t)
	var doc schema.Document
	err := json.Unmarshal([]byte(`{
		"type": "object",
		"properties": { "p": { "$ref": "#/definitions/P" } },
		"definitions": { "P": { "type": "string" } }
	}`), &doc)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Zero(countKey(doc, "$ref"))
	assert.Equal("string", property(doc, "p")["type"])
	assert.Equal(map[string]any{"P": map[string]any{"type": "string"}}, doc["$defs"])
}

func Test_document_010(t *testing.T) {
	// YAML documents are projected on decode
	assert := assert.New(t)
	var doc schema.Document
	err := yaml.Unmarshal([]byte(`
type: object
properties:
  city:
    $ref: "#/definitions/City"
definitions:
  City:
    type: string
    description: A city name
`), &doc)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Zero(countKey(doc, "$ref"))
	assert.Equal("A city name", property(doc, "city")["description"])
	assert.Contains(doc, "$defs")
}

func Test_document_011(t *testing.T) {
	// Documents convert back for validation
	assert := assert.New(t)
	doc := schema.MustFor[Address]()
	s, err := doc.Schema()
	if !assert.NoError(err) {
		t.FailNow()
	}
	resolved, err := s.Resolve(nil)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(resolved.Validate(map[string]any{"street": "High Street", "city": "London"}))
	assert.Error(resolved.Validate(map[string]any{"street": 42, "city": "London"}))
}

func Test_document_012(t *testing.T) {
	// Projection is repeatable
	assert := assert.New(t)
	a, err := schema.For[Customer]()
	assert.NoError(err)
	b, err := schema.For[Customer]()
	assert.NoError(err)
	assert.Equal(a, b)
}

func Test_document_013(t *testing.T) {
	// Recursive types cannot be reflected
	assert := assert.New(t)
	_, err := schema.For[ListNode]()
	assert.ErrorIs(err, llm.ErrBadParameter)
	assert.Panics(func() { schema.MustFor[ListNode]() })
}
