package tool

import (
	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Names returns the names of the tools in a group, in order
func Names(g Group) []string {
	descriptors := g.Enumerate(nil)
	result := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		result = append(result, d.Name())
	}
	return result
}

// Check returns an error if a tool name is not an identifier, or if a name
// is repeated. A repeated name is legal for dispatch, where the first tool
// wins, but the later tool can never be called.
func Check(g Group) error {
	seen := make(map[string]bool)
	for _, name := range Names(g) {
		if !types.IsIdentifier(name) {
			return llm.ErrBadParameter.Withf("invalid tool name: %q", name)
		} else if seen[name] {
			return llm.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		seen[name] = true
	}
	return nil
}
