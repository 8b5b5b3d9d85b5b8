package tools

import (
	"context"
	"strings"
	"time"
	_ "time/tzdata"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
	tool "github.com/mutablelogic/go-llm-toolcall/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type TimeRequest struct {
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA time zone name such as Europe/Berlin, defaults to UTC"`
}

type getTime struct {
	now func() time.Time
}

var _ tool.Tool[TimeRequest] = (*getTime)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTime returns a tool which reports the current time. The clock defaults
// to time.Now when nil.
func NewTime(now func() time.Time) tool.Tool[TimeRequest] {
	if now == nil {
		now = time.Now
	}
	return &getTime{now: now}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL INTERFACE

func (*getTime) Name() string {
	return "get_time"
}

func (*getTime) Description() string {
	return "Get the current date and time in RFC 3339 format, optionally in a specific time zone."
}

func (t *getTime) Call(_ context.Context, req TimeRequest) (string, error) {
	loc := time.UTC
	if name := strings.TrimSpace(req.Timezone); name != "" {
		if l, err := time.LoadLocation(name); err != nil {
			return "", llm.ErrBadParameter.Withf("unknown time zone %q", name)
		} else {
			loc = l
		}
	}
	return t.now().In(loc).Format(time.RFC3339), nil
}
