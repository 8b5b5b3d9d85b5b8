package schema

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	// Packages
	llm "github.com/mutablelogic/go-llm-toolcall"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// KeepAlive controls how long a model stays loaded after a request. By
// default the server unloads a model after five minutes of inactivity. The
// zero value unloads the model once the response completes.
type KeepAlive struct {
	mode keepAliveMode
	time uint64
	unit TimeUnit
}

// TimeUnit is the unit of a keep-alive duration
type TimeUnit int

type keepAliveMode int

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Seconds TimeUnit = iota
	Minutes
	Hours
)

const (
	keepAliveUnload keepAliveMode = iota
	keepAliveIndefinitely
	keepAliveFor
)

var (
	reKeepAlive = regexp.MustCompile(`^(\d+)(s|m|hr)$`)
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// KeepAliveIndefinitely keeps the model loaded until it is explicitly unloaded
func KeepAliveIndefinitely() KeepAlive {
	return KeepAlive{mode: keepAliveIndefinitely}
}

// KeepAliveUnload unloads the model as soon as the response completes
func KeepAliveUnload() KeepAlive {
	return KeepAlive{mode: keepAliveUnload}
}

// KeepAliveFor keeps the model loaded for a number of time units. A zero
// magnitude unloads the model.
func KeepAliveFor(time uint64, unit TimeUnit) KeepAlive {
	if time == 0 {
		return KeepAliveUnload()
	}
	return KeepAlive{mode: keepAliveFor, time: time, unit: unit}
}

// KeepAliveDuration converts a duration: negative is indefinite, zero
// unloads, otherwise the largest unit which divides the duration exactly is
// used. A duration which is not a whole number of seconds is rounded up to
// the next second.
func KeepAliveDuration(d time.Duration) KeepAlive {
	switch {
	case d < 0:
		return KeepAliveIndefinitely()
	case d == 0:
		return KeepAliveUnload()
	case d%time.Hour == 0:
		return KeepAliveFor(uint64(d/time.Hour), Hours)
	case d%time.Minute == 0:
		return KeepAliveFor(uint64(d/time.Minute), Minutes)
	case d%time.Second != 0:
		return KeepAliveFor(uint64(d/time.Second)+1, Seconds)
	default:
		return KeepAliveFor(uint64(d/time.Second), Seconds)
	}
}

// ParseKeepAlive parses one of the three wire encodings: "-1", "0" or
// a number followed by "s", "m" or "hr"
func ParseKeepAlive(v string) (KeepAlive, error) {
	v = strings.TrimSpace(v)
	switch v {
	case "-1":
		return KeepAliveIndefinitely(), nil
	case "0":
		return KeepAliveUnload(), nil
	}
	match := reKeepAlive.FindStringSubmatch(v)
	if match == nil {
		return KeepAlive{}, llm.ErrBadParameter.Withf("keep-alive %q unsupported", v)
	}
	n, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return KeepAlive{}, llm.ErrBadParameter.Withf("keep-alive %q: %v", v, err)
	}
	for _, unit := range []TimeUnit{Seconds, Minutes, Hours} {
		if unit.Symbol() == match[2] {
			return KeepAliveFor(n, unit), nil
		}
	}
	return KeepAlive{}, llm.ErrBadParameter.Withf("keep-alive %q unsupported", v)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k KeepAlive) String() string {
	switch k.mode {
	case keepAliveIndefinitely:
		return "-1"
	case keepAliveUnload:
		return "0"
	default:
		return strconv.FormatUint(k.time, 10) + k.unit.Symbol()
	}
}

func (u TimeUnit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	}
	return "unknown"
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Symbol returns the wire suffix for the unit
func (u TimeUnit) Symbol() string {
	switch u {
	case Seconds:
		return "s"
	case Minutes:
		return "m"
	case Hours:
		return "hr"
	}
	return ""
}

// Duration returns the keep-alive as a duration, which is negative when the
// model is kept loaded indefinitely
func (k KeepAlive) Duration() time.Duration {
	switch k.mode {
	case keepAliveIndefinitely:
		return -1
	case keepAliveUnload:
		return 0
	}
	switch k.unit {
	case Hours:
		return time.Duration(k.time) * time.Hour
	case Minutes:
		return time.Duration(k.time) * time.Minute
	default:
		return time.Duration(k.time) * time.Second
	}
}

func (k KeepAlive) MarshalJSON() ([]byte, error) {
	switch k.mode {
	case keepAliveIndefinitely:
		return []byte("-1"), nil
	case keepAliveUnload:
		return []byte("0"), nil
	}
	if k.unit.Symbol() == "" {
		return nil, llm.ErrBadParameter.Withf("keep-alive unit %d unsupported", int(k.unit))
	}
	return json.Marshal(k.String())
}

func (k *KeepAlive) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		if !reKeepAlive.MatchString(value) {
			return llm.ErrBadParameter.Withf("keep-alive %q unsupported", value)
		}
		v, err := ParseKeepAlive(value)
		if err != nil {
			return err
		}
		*k = v
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return llm.ErrBadParameter.Withf("keep-alive %s unsupported", data)
	}
	switch n {
	case -1:
		*k = KeepAliveIndefinitely()
	case 0:
		*k = KeepAliveUnload()
	default:
		return llm.ErrBadParameter.Withf("keep-alive %d unsupported", n)
	}
	return nil
}
