package main

import (
	"fmt"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	ollama "github.com/mutablelogic/go-llm-toolcall/pkg/ollama"
	schema "github.com/mutablelogic/go-llm-toolcall/pkg/schema"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	ui "github.com/mutablelogic/go-llm-toolcall/pkg/ui"
	markdown "github.com/mutablelogic/go-llm-toolcall/pkg/ui/markdown"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Model         string `arg:"" name:"model" help:"Model name"`
	Prompt        string `arg:"" name:"prompt" help:"User prompt"`
	System        string `name:"system" help:"System prompt"`
	Format        string `name:"format" help:"Response format, which can only be json"`
	Schema        string `name:"schema" help:"JSON or YAML file with the schema of the response" type:"existingfile"`
	Output        bool   `name:"output" help:"Return the schema response through the submit_output tool"`
	KeepAlive     string `name:"keep-alive" help:"How long the model stays loaded (for example 5m, 1hr, -1 or 0)"`
	MaxIterations uint   `name:"max-iterations" help:"Maximum rounds of tool calls" default:"8"`
	NoTools       bool   `name:"no-tools" help:"Do not offer tools to the model"`
	Raw           bool   `name:"raw" help:"Print the response without markdown formatting"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Tools
	g := tool.Empty()
	if !cmd.NoTools {
		g = ctx.Registry()
	}

	// Request
	req := ollama.ChatRequest{
		Model: cmd.Model,
	}
	system := cmd.System
	switch cmd.Format {
	case "":
		// Free text
	case "json":
		format := schema.FormatJSON()
		req.Format = &format
	default:
		return errorf("unsupported format %q", cmd.Format)
	}
	if cmd.Schema != "" {
		doc, err := readSchema(cmd.Schema)
		if err != nil {
			return err
		}
		if cmd.Output {
			g = tool.Compose(g, tool.NewOutput(doc, tool.WithValidation()))
			system = joinPrompt(system, tool.OutputToolInstruction)
		} else {
			format := schema.FormatSchema(doc)
			req.Format = &format
		}
	} else if cmd.Output {
		return errorf("--output requires --schema")
	}
	if cmd.KeepAlive != "" {
		keepalive, err := schema.ParseKeepAlive(cmd.KeepAlive)
		if err != nil {
			return err
		}
		req.KeepAlive = &keepalive
	}
	if system != "" {
		req.Messages = append(req.Messages, ollama.SystemMessage(system))
	}
	req.Messages = append(req.Messages, ollama.UserMessage(cmd.Prompt))

	// Chat
	response, err := client.ChatWithTools(parent, req, g,
		ollama.WithMaxIterations(cmd.MaxIterations),
		ollama.WithTracer(ctx.tracer),
		ollama.WithToolCallback(func(result tool.Result) {
			if ctx.Verbose || ctx.Debug {
				fmt.Fprintln(os.Stderr, markdown.Wrap(result.String(), ui.Width()))
			}
		}),
	)
	if err != nil {
		return err
	}

	// Print
	switch {
	case ctx.Debug:
		fmt.Println(response)
	case cmd.Raw || cmd.Output || req.Format != nil:
		fmt.Println(response.Message.Content)
	default:
		text, err := markdown.Render(response.Message.Content, ui.Width())
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readSchema reads a schema document from a JSON or YAML file
func readSchema(path string) (schema.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc schema.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errorf("%s: %v", path, err)
	} else if doc == nil {
		return nil, errorf("%s: empty schema", path)
	}
	return doc, nil
}

func joinPrompt(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n\n" + b
}
