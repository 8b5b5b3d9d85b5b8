package main

import (
	"sort"

	// Packages
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	table "github.com/mutablelogic/go-llm-toolcall/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// descriptorTable lists tool descriptors with their parameter names
type descriptorTable []tool.Descriptor

var _ table.TableData = descriptorTable(nil)

///////////////////////////////////////////////////////////////////////////////
// TABLE DATA

func (descriptorTable) Header() []string {
	return []string{"Name", "Description", "Parameters"}
}

func (t descriptorTable) Len() int {
	return len(t)
}

func (t descriptorTable) Row(i int) []any {
	d := t[i]
	return []any{table.Bold{Value: d.Name()}, table.Truncate(d.Description(), 80), parameters(d)}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// parameters returns the sorted property names of the parameter schema
func parameters(d tool.Descriptor) []string {
	properties, _ := d.Parameters()["properties"].(map[string]any)
	result := make([]string, 0, len(properties))
	for name := range properties {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
