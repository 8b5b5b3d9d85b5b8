package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	ollama "github.com/mutablelogic/go-llm-toolcall/pkg/ollama"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	tools "github.com/mutablelogic/go-llm-toolcall/pkg/tools"
	version "github.com/mutablelogic/go-llm-toolcall/pkg/version"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool             `name:"debug" help:"Enable debug output"`
	Verbose bool             `name:"verbose" help:"Enable verbose output"`
	Version kong.VersionFlag `name:"version" help:"Print version and exit"`

	// Ollama
	Ollama `embed:"" help:"Ollama configuration"`

	// Tools
	Validate bool `name:"validate" help:"Validate tool arguments against their schema"`

	// Context
	ctx    context.Context
	tracer trace.Tracer
}

type Ollama struct {
	OllamaURL string        `name:"ollama-url" env:"OLLAMA_URL" help:"Ollama endpoint" default:"${OLLAMA_URL}"`
	Timeout   time.Duration `name:"timeout" help:"Timeout for requests to Ollama" default:"5m"`
}

type CLI struct {
	Globals

	// Commands
	Tools ToolsCmd `cmd:"" help:"Return the tools which can be called"`
	Call  CallCmd  `cmd:"" help:"Call a tool with JSON arguments"`
	Chat  ChatCmd  `cmd:"" help:"Chat with a model which can call tools"`

	// Build
	Info VersionCmd `cmd:"" name:"version" help:"Print build information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Tool calling command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"OLLAMA_URL": ollama.DefaultEndpoint,
			"version":    version.Version(),
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.tracer = otel.Tracer(execName())

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an ollama client configured from the global flags
func (g *Globals) Client() (*ollama.Client, error) {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return ollama.New(g.OllamaURL, opts...)
}

// Registry returns the built-in tools
func (g *Globals) Registry() tool.Group {
	opts := []tool.Opt{}
	if g.Validate {
		opts = append(opts, tool.WithValidation())
	}
	if g.tracer != nil {
		opts = append(opts, tool.WithTracer(g.tracer))
	}
	return tools.All(opts...)
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

type VersionCmd struct{}

func (*VersionCmd) Run(ctx *Globals) error {
	fmt.Println(version.Get(execName()))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
