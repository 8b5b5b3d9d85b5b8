package version_test

import (
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-llm-toolcall/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	info := version.Get("toolcall")
	assert.Equal("toolcall", info.Name)
	assert.Equal(runtime.Version(), info.Compiler)
	assert.NotEmpty(info.Version)
	assert.Contains(info.String(), "toolcall")
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	tag := version.GitTag
	defer func() { version.GitTag = tag }()

	version.GitTag = "v1.2.3"
	assert.Equal("v1.2.3", version.Version())
	assert.Equal("v1.2.3", version.Get("toolcall").Tag)
}
