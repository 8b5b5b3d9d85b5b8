package main

import (
	"encoding/json"
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llm "github.com/mutablelogic/go-llm-toolcall"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	table "github.com/mutablelogic/go-llm-toolcall/pkg/ui/table"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct {
	Names bool `name:"names" help:"Only print the tool names"`
	JSON  bool `name:"json" help:"Print the tool descriptors as JSON"`
}

type CallCmd struct {
	Name string `arg:"" name:"name" help:"Tool name"`
	Args string `arg:"" name:"args" help:"Tool arguments as JSON" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCmd) Run(ctx *Globals) error {
	g := ctx.Registry()
	if err := tool.Check(g); err != nil {
		return err
	}
	if cmd.Names {
		for _, name := range tool.Names(g) {
			fmt.Println(name)
		}
		return nil
	}
	if cmd.JSON || ctx.Debug {
		fmt.Println(types.Stringify(g.Enumerate(nil)))
	} else {
		fmt.Println(table.Render(descriptorTable(g.Enumerate(nil))))
	}
	return nil
}

func (cmd *CallCmd) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CallCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Make the call
	var arguments any
	if cmd.Args != "" {
		arguments = json.RawMessage(cmd.Args)
	}
	call, err := tool.NewCall(cmd.Name, arguments)
	if err != nil {
		return err
	}

	// Dispatch it
	result := tool.Run(parent, ctx.Registry(), call)[0]
	if result.Err != nil {
		return result.Err
	} else if ctx.Debug {
		fmt.Println(result)
	} else {
		fmt.Println(result.Text())
	}

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func errorf(format string, args ...any) error {
	return llm.ErrBadParameter.Withf(format, args...)
}
