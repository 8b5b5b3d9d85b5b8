/*
tools implements general-purpose tools which can be registered with a
tool group
*/
package tools

import (
	// Packages
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// All returns a group with every built-in tool, in a fixed order
func All(opts ...tool.Opt) tool.Group {
	return tool.Compose(
		tool.Register(NewTime(nil), opts...),
		tool.Register(NewCalculator(), opts...),
	)
}
