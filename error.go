package llm

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrConflict
	ErrInternalServerError
	ErrUnknownTool
	ErrArgumentDecode
	ErrExecution
	ErrMaxIterations
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrConflict:
		return "conflict"
	case ErrInternalServerError:
		return "internal server error"
	case ErrUnknownTool:
		return "unknown tool name"
	case ErrArgumentDecode:
		return "tool arguments could not be decoded"
	case ErrExecution:
		return "tool execution failed"
	case ErrMaxIterations:
		return "maximum tool iterations reached"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Wrap returns an error which matches both the error code and the cause
// with errors.Is and errors.As
func (e Err) Wrap(err error) error {
	if err == nil {
		return e
	}
	return fmt.Errorf("%w: %w", e, err)
}
