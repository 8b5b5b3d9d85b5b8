package llm_test

import (
	"errors"
	"io"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("unknown tool name", llm.ErrUnknownTool.Error())
	assert.Equal("error code 999", llm.Err(999).Error())
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)
	err := llm.ErrBadParameter.Withf("name %q", "x")
	assert.ErrorIs(err, llm.ErrBadParameter)
	assert.Equal(`bad parameter: name "x"`, err.Error())
}

func Test_error_003(t *testing.T) {
	// Wrap preserves both the code and the cause
	assert := assert.New(t)
	err := llm.ErrExecution.Wrap(io.ErrUnexpectedEOF)
	assert.ErrorIs(err, llm.ErrExecution)
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
	assert.False(errors.Is(err, llm.ErrArgumentDecode))
}

func Test_error_004(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(llm.ErrExecution, llm.ErrExecution.Wrap(nil))
}
