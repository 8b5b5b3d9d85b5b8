package tools_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
	tools "github.com/mutablelogic/go-llm-toolcall/pkg/tools"
	assert "github.com/stretchr/testify/assert"
)

func dispatch(g tool.Group, name, arguments string) (string, error) {
	return g.Dispatch(context.TODO(), tool.Function{Name: name, Arguments: json.RawMessage(arguments)})
}

func Test_tools_001(t *testing.T) {
	assert := assert.New(t)
	g := tools.All()
	assert.Equal([]string{"get_time", "calculator"}, tool.Names(g))
	assert.NoError(tool.Check(g))
}

func Test_time_001(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	g := tool.Register(tools.NewTime(func() time.Time { return now }))

	result, err := dispatch(g, "get_time", `{}`)
	assert.NoError(err)
	assert.Equal(`"2024-06-01T12:30:00Z"`, result)

	result, err = dispatch(g, "get_time", `{"timezone":"Asia/Tokyo"}`)
	assert.NoError(err)
	assert.Equal(`"2024-06-01T21:30:00+09:00"`, result)

	_, err = dispatch(g, "get_time", `{"timezone":"Mars/Olympus_Mons"}`)
	assert.ErrorIs(err, llm.ErrExecution)
	assert.ErrorIs(err, llm.ErrBadParameter)
}

func Test_calculator_001(t *testing.T) {
	assert := assert.New(t)
	g := tool.Register(tools.NewCalculator(), tool.WithValidation())
	tests := []struct {
		args   string
		result string
	}{
		{`{"operation":"add","a":1,"b":2}`, `"3"`},
		{`{"operation":"subtract","a":1,"b":2.5}`, `"-1.5"`},
		{`{"operation":"multiply","a":4,"b":2.5}`, `"10"`},
		{`{"operation":"Divide","a":1,"b":4}`, `"0.25"`},
	}
	for _, test := range tests {
		result, err := dispatch(g, "calculator", test.args)
		assert.NoError(err, test.args)
		assert.Equal(test.result, result, test.args)
	}
}

func Test_calculator_002(t *testing.T) {
	assert := assert.New(t)
	g := tool.Register(tools.NewCalculator(), tool.WithValidation())

	_, err := dispatch(g, "calculator", `{"operation":"divide","a":1,"b":0}`)
	assert.ErrorIs(err, llm.ErrExecution)

	_, err = dispatch(g, "calculator", `{"operation":"modulo","a":1,"b":2}`)
	assert.ErrorIs(err, llm.ErrExecution)

	_, err = dispatch(g, "calculator", `{"operation":"add","a":"one","b":2}`)
	assert.ErrorIs(err, llm.ErrArgumentDecode)
}
