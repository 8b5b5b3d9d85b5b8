package tool

import (
	"context"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Group is an ordered collection of tools. A group is not safe for
// concurrent dispatch: a tool is called by at most one dispatch at a time.
type Group interface {
	// Append the descriptor of every tool in the group to out, in order
	Enumerate(out []Descriptor) []Descriptor

	// Dispatch a call to the first tool whose name matches, and return
	// the encoded result
	Dispatch(ctx context.Context, call Function) (string, error)
}

type empty struct{}

type group []Group

var _ Group = empty{}
var _ Group = group(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Empty returns a group with no tools
func Empty() Group {
	return empty{}
}

// Compose returns a group which contains the tools of each group in turn.
// Composition is associative; the order sets precedence when names repeat.
func Compose(groups ...Group) Group {
	result := make(group, 0, len(groups))
	for _, g := range groups {
		switch g := g.(type) {
		case nil, empty:
			continue
		case group:
			result = append(result, g...)
		default:
			result = append(result, g)
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// EMPTY

func (empty) Enumerate(out []Descriptor) []Descriptor {
	return out
}

func (empty) Dispatch(_ context.Context, call Function) (string, error) {
	return "", llm.ErrUnknownTool.Withf("%q", call.Name)
}

///////////////////////////////////////////////////////////////////////////////
// GROUP

func (g group) Enumerate(out []Descriptor) []Descriptor {
	for _, member := range g {
		out = member.Enumerate(out)
	}
	return out
}

// Dispatch tries each member in order, and moves on only when a member does
// not know the name. Any other error ends the dispatch.
func (g group) Dispatch(ctx context.Context, call Function) (string, error) {
	for _, member := range g {
		result, err := member.Dispatch(ctx, call)
		if err == nil {
			return result, nil
		} else if !isUnknown(err) {
			return "", err
		}
	}
	return "", llm.ErrUnknownTool.Withf("%q", call.Name)
}
