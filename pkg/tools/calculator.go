package tools

import (
	"context"
	"math"
	"strconv"
	"strings"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CalculatorRequest struct {
	Operation string  `json:"operation" jsonschema:"One of add, subtract, multiply or divide"`
	A         float64 `json:"a" jsonschema:"The first operand"`
	B         float64 `json:"b" jsonschema:"The second operand"`
}

type calculator struct{}

var _ tool.Tool[CalculatorRequest] = (*calculator)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCalculator returns a tool which performs basic arithmetic
func NewCalculator() tool.Tool[CalculatorRequest] {
	return &calculator{}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL INTERFACE

func (*calculator) Name() string {
	return "calculator"
}

func (*calculator) Description() string {
	return "Perform basic arithmetic (add, subtract, multiply, divide) on two numbers."
}

func (*calculator) Call(_ context.Context, req CalculatorRequest) (string, error) {
	var result float64
	switch strings.ToLower(strings.TrimSpace(req.Operation)) {
	case "add":
		result = req.A + req.B
	case "subtract":
		result = req.A - req.B
	case "multiply":
		result = req.A * req.B
	case "divide":
		if req.B == 0 {
			return "", llm.ErrBadParameter.With("division by zero")
		}
		result = req.A / req.B
	default:
		return "", llm.ErrBadParameter.Withf("unknown operation %q", req.Operation)
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return "", llm.ErrBadParameter.With("result out of range")
	}
	return strconv.FormatFloat(result, 'f', -1, 64), nil
}
