package schema

import (
	"encoding/json"
	"reflect"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	llm "github.com/mutablelogic/go-llm-toolcall"
	types "github.com/mutablelogic/go-server/pkg/types"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Document is a JSON schema projected for transmission to the model: every
// reference is inlined and shared definitions live under "$defs".
type Document map[string]any

// projector expands references against a single schema root
type projector struct {
	root   map[string]any
	active map[string]bool
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	keyRef         = "$ref"
	keyDefs        = "$defs"
	keyDefinitions = "definitions"
	keySchema      = "$schema"
	refRoot        = "#"
	draft07        = "http://json-schema.org/draft-07/schema#"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// For reflects the type T into a schema and projects it. Recursive types
// are not supported and return an error: only documents passed to
// NewDocument or decoded from JSON or YAML may contain cycles, which are
// broken with the empty schema.
func For[T any]() (Document, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, llm.ErrBadParameter.Withf("schema for %v: %v", reflect.TypeFor[T](), err)
	}
	return NewDocument(s)
}

// MustFor is like For but panics on error. Use it where the type is fixed at
// compile time, so a failure is a bug in the type definition.
func MustFor[T any]() Document {
	doc, err := For[T]()
	if err != nil {
		panic(err)
	}
	return doc
}

// NewDocument projects an existing schema
func NewDocument(s *jsonschema.Schema) (Document, error) {
	if s == nil {
		return nil, llm.ErrBadParameter.With("schema is nil")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, llm.ErrBadParameter.Withf("schema: %v", err)
	}
	return project(data)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d Document) String() string {
	return types.Stringify(d)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Schema converts the document back into a schema, for validation
func (d Document) Schema() (*jsonschema.Schema, error) {
	if d == nil {
		return nil, nil
	}

	// The validator only speaks its own dialect, so the draft marker is dropped
	body := make(map[string]any, len(d))
	for k, v := range d {
		if k != keySchema {
			body[k] = v
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	s := new(jsonschema.Schema)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, llm.ErrBadParameter.Withf("schema: %v", err)
	}
	return s, nil
}

// UnmarshalJSON decodes and projects a schema
func (d *Document) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = nil
		return nil
	}
	doc, err := project(data)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

// UnmarshalYAML decodes a YAML node into a native value, then projects it
// as JSON
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return d.UnmarshalJSON(data)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func project(data []byte) (Document, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, llm.ErrBadParameter.Withf("schema: %v", err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, llm.ErrInternalServerError.Withf("schema root is %T, expected an object", root)
	}

	// The root is in expansion for the whole walk, so "#" never recurses
	p := &projector{root: obj, active: map[string]bool{refRoot: true}}
	expanded, err := p.expand(obj)
	if err != nil {
		return nil, err
	}
	doc := Document(expanded.(map[string]any))

	// Rename the definitions container
	if defs, exists := doc[keyDefinitions]; exists {
		delete(doc, keyDefinitions)
		if current, ok := doc[keyDefs].(map[string]any); ok {
			if defs, ok := defs.(map[string]any); ok {
				for name, def := range defs {
					if _, exists := current[name]; !exists {
						current[name] = def
					}
				}
			}
		} else {
			doc[keyDefs] = defs
		}
	}

	if _, exists := doc[keySchema]; !exists {
		doc[keySchema] = draft07
	}

	return doc, nil
}

// expand returns a deep copy of node with every reference replaced by a copy
// of its target. A reference met while its own target is being expanded
// becomes the empty schema.
func (p *projector) expand(node any) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		if ref, ok := v[keyRef].(string); ok {
			return p.expandRef(ref, v)
		}
		result := make(map[string]any, len(v))
		for key, value := range v {
			if expanded, err := p.expand(value); err != nil {
				return nil, err
			} else {
				result[key] = expanded
			}
		}
		return result, nil
	case []any:
		result := make([]any, len(v))
		for i, value := range v {
			if expanded, err := p.expand(value); err != nil {
				return nil, err
			} else {
				result[i] = expanded
			}
		}
		return result, nil
	default:
		return v, nil
	}
}

func (p *projector) expandRef(ref string, node map[string]any) (any, error) {
	var result map[string]any
	if p.active[ref] {
		result = map[string]any{}
	} else {
		target, err := p.resolve(ref)
		if err != nil {
			return nil, err
		}
		p.active[ref] = true
		expanded, err := p.expand(target)
		delete(p.active, ref)
		if err != nil {
			return nil, err
		}
		switch expanded := expanded.(type) {
		case map[string]any:
			result = expanded
		case bool:
			if len(node) == 1 {
				return expanded, nil
			}
			result = map[string]any{}
			if !expanded {
				result["not"] = map[string]any{}
			}
		default:
			return nil, llm.ErrBadParameter.Withf("reference %q: target is %T", ref, expanded)
		}
	}

	// Sibling keywords overlay the target
	for key, value := range node {
		if key == keyRef {
			continue
		}
		if expanded, err := p.expand(value); err != nil {
			return nil, err
		} else {
			result[key] = expanded
		}
	}
	return result, nil
}

// resolve returns the target of a local reference
func (p *projector) resolve(ref string) (any, error) {
	if ref == refRoot {
		return p.root, nil
	}
	for _, container := range []string{keyDefinitions, keyDefs} {
		prefix := refRoot + "/" + container + "/"
		if !strings.HasPrefix(ref, prefix) {
			continue
		}
		name := unescapePointer(strings.TrimPrefix(ref, prefix))
		if defs, ok := p.root[container].(map[string]any); ok {
			if target, exists := defs[name]; exists {
				return target, nil
			}
		}
		return nil, llm.ErrBadParameter.Withf("reference %q: no such definition", ref)
	}
	return nil, llm.ErrBadParameter.Withf("reference %q cannot be inlined", ref)
}

func unescapePointer(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
}
