package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	schema "github.com/mutablelogic/go-llm-toolcall/pkg/schema"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// DESCRIPTOR

func Test_descriptor_001(t *testing.T) {
	// Wire shape of a descriptor
	assert := assert.New(t)
	d := tool.DescriptorFor[WeatherParams]("get_weather", "Get the weather")
	data, err := json.Marshal(d)
	if !assert.NoError(err) {
		t.FailNow()
	}

	var v struct {
		Type     string `json:"type"`
		Function struct {
			Name        string         `json:"name"`
			Description string         `json:"description"`
			Parameters  map[string]any `json:"parameters"`
		} `json:"function"`
	}
	assert.NoError(json.Unmarshal(data, &v))
	assert.Equal("function", v.Type)
	assert.Equal("get_weather", v.Function.Name)
	assert.Equal("Get the weather", v.Function.Description)
	assert.Equal("object", v.Function.Parameters["type"])
	assert.Contains(v.Function.Parameters["properties"], "city")
	assert.NotContains(string(data), "$ref")
}

func Test_descriptor_002(t *testing.T) {
	// A pre-built document bypasses projection
	assert := assert.New(t)
	doc := schema.Document{"type": "object"}
	d := tool.NewDescriptor("custom", "Custom tool", doc)
	assert.Equal("custom", d.Name())
	assert.Equal("Custom tool", d.Description())
	assert.Equal(doc, d.Parameters())
	assert.Contains(d.String(), `"custom"`)
}

func Test_descriptor_003(t *testing.T) {
	// Registered tools advertise their descriptor
	assert := assert.New(t)
	descriptors := tool.Register[WeatherParams](new(weatherTool)).Enumerate(nil)
	if assert.Len(descriptors, 1) {
		assert.Equal(tool.DescriptorFor[WeatherParams]("get_weather", "Get the weather for a city"), descriptors[0])
	}
}

///////////////////////////////////////////////////////////////////////////////
// CALL

func Test_call_001(t *testing.T) {
	// Wire shape of an incoming call
	assert := assert.New(t)
	var c tool.Call
	assert.NoError(json.Unmarshal([]byte(`{"function":{"name":"get_weather","arguments":{"city":"Oslo"}}}`), &c))
	assert.Equal("get_weather", c.Name())

	var params WeatherParams
	assert.NoError(c.Function.Decode(&params))
	assert.Equal("Oslo", params.City)
}

func Test_call_002(t *testing.T) {
	assert := assert.New(t)
	c, err := tool.NewCall("get_weather", WeatherParams{City: "Rome"})
	assert.NoError(err)
	assert.JSONEq(`{"city":"Rome"}`, string(c.Function.Arguments))

	c, err = tool.NewCall("get_time", nil)
	assert.NoError(err)
	assert.Empty(c.Function.Arguments)

	c, err = tool.NewCall("raw", json.RawMessage(`[1,2]`))
	assert.NoError(err)
	assert.Equal(`[1,2]`, string(c.Function.Arguments))

	_, err = tool.NewCall("bad", []byte(`{`))
	assert.ErrorIs(err, llm.ErrBadParameter)
}

///////////////////////////////////////////////////////////////////////////////
// RAW AND OUTPUT

func Test_raw_001(t *testing.T) {
	assert := assert.New(t)
	d := tool.NewDescriptor("echo", "Echo the arguments", schema.Document{"type": "object"})
	g := tool.RegisterFunc(d, func(_ context.Context, arguments json.RawMessage) (string, error) {
		return string(arguments), nil
	})
	assert.Equal([]tool.Descriptor{d}, g.Enumerate(nil))

	result, err := g.Dispatch(context.TODO(), call("echo", `{"a":1}`))
	assert.NoError(err)
	assert.Equal(`"{\"a\":1}"`, result)

	_, err = g.Dispatch(context.TODO(), call("other", `{}`))
	assert.ErrorIs(err, llm.ErrUnknownTool)
}

func Test_raw_002(t *testing.T) {
	// Errors are classified
	assert := assert.New(t)
	d := tool.NewDescriptor("strict", "", schema.Document{"type": "object"})
	g := tool.RegisterFunc(d, func(_ context.Context, arguments json.RawMessage) (string, error) {
		if string(arguments) == `{}` {
			return "", llm.ErrArgumentDecode.With("empty")
		}
		return "", llm.ErrNotImplemented
	})

	_, err := g.Dispatch(context.TODO(), call("strict", `{}`))
	assert.ErrorIs(err, llm.ErrArgumentDecode)
	assert.False(errors.Is(err, llm.ErrExecution))

	_, err = g.Dispatch(context.TODO(), call("strict", `{"x":1}`))
	assert.ErrorIs(err, llm.ErrExecution)
	assert.ErrorIs(err, llm.ErrNotImplemented)
}

func Test_output_001(t *testing.T) {
	// The output tool returns its arguments
	assert := assert.New(t)
	g := tool.NewOutput(schema.MustFor[WeatherParams]())
	assert.Equal([]string{tool.OutputToolName}, tool.Names(g))

	result, err := g.Dispatch(context.TODO(), call(tool.OutputToolName, `{ "city" : "Lima" }`))
	assert.NoError(err)
	assert.Equal(`{"city":"Lima"}`, tool.Result{Value: result}.Text())
}

///////////////////////////////////////////////////////////////////////////////
// RUN

func Test_run_001(t *testing.T) {
	// Calls run in order with one result each
	assert := assert.New(t)
	weather, clock := new(weatherTool), new(timeTool)
	g := tool.Compose(tool.Register[WeatherParams](weather), tool.Register[TimeParams](clock))

	c1, _ := tool.NewCall("get_time", nil)
	c2, _ := tool.NewCall("unknown", nil)
	c3, _ := tool.NewCall("get_weather", map[string]string{"city": "Cairo"})
	results := tool.Run(context.TODO(), g, c1, c2, c3)
	if !assert.Len(results, 3) {
		t.FailNow()
	}
	assert.NoError(results[0].Err)
	assert.Equal("12:00", results[0].Text())
	assert.ErrorIs(results[1].Err, llm.ErrUnknownTool)
	assert.NoError(results[2].Err)
	assert.Equal("Sunny in Cairo", results[2].Text())
	assert.Equal("get_weather", results[2].Call.Name())

	data, err := json.Marshal(results[1])
	assert.NoError(err)
	assert.Contains(string(data), `"error":"unknown tool name`)
}

func Test_run_002(t *testing.T) {
	// A cancelled context stops dispatch
	assert := assert.New(t)
	clock := new(timeTool)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, _ := tool.NewCall("get_time", nil)
	results := tool.Run(ctx, tool.Register[TimeParams](clock), c, c)
	assert.Len(results, 2)
	assert.ErrorIs(results[0].Err, context.Canceled)
	assert.ErrorIs(results[1].Err, context.Canceled)
	assert.Equal(0, clock.calls)
}

func Test_run_003(t *testing.T) {
	// Results marshal with the call, the result and any error
	assert := assert.New(t)
	c, _ := tool.NewCall("get_time", nil)
	results := tool.Run(context.TODO(), tool.Register[TimeParams](new(timeTool)), c)
	data, err := json.Marshal(results[0])
	assert.NoError(err)
	assert.JSONEq(`{"call":{"function":{"name":"get_time"}},"result":"\"12:00\""}`, string(data))
}
