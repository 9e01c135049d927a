// Package ops holds the tool and resource tables and the dispatcher that
// turns a tool call into one GitHub request and a reshaped payload.
package ops

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/Fuabioo/ghmcp/internal/errors"
	"github.com/Fuabioo/ghmcp/internal/github"
)

// ParamType is the JSON schema type of a tool parameter.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeNumber ParamType = "number"
)

// Param describes one named tool argument.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Enum        []string
	Required    bool

	// Default is used when the argument is missing, empty or zero.
	Default any

	validate func(string) error
}

// Operation is one row of the tool table: the descriptor advertised to
// clients and everything needed to serve a call.
type Operation struct {
	Name        string
	Description string
	Params      []Param

	endpoint func(Args) string
	reshape  func(*github.Response) (any, error)
}

// Args is the untyped argument bag of a call.
type Args map[string]any

// String returns the string value of key, or def when it is absent, empty
// or a zero number.
func (a Args) String(key, def string) string {
	switch v := a[key].(type) {
	case string:
		if v != "" {
			return v
		}
	case json.Number:
		if f, err := v.Float64(); err != nil || f != 0 {
			return v.String()
		}
	case float64:
		if v != 0 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	case int:
		if v != 0 {
			return strconv.Itoa(v)
		}
	}
	return def
}

// Int returns the integer value of key, or def when it is absent, zero or
// not a number.
func (a Args) Int(key string, def int) int {
	var n int
	switch v := a[key].(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case int64:
		n = int(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return def
		}
		n = int(parsed)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		n = parsed
	}
	if n == 0 {
		return def
	}
	return n
}

// resolve checks required arguments, validates path-bound values and
// returns a copy of args with every default filled in.
func (op Operation) resolve(args Args) (Args, error) {
	resolved := make(Args, len(op.Params))

	for _, p := range op.Params {
		switch p.Type {
		case TypeNumber:
			def, _ := p.Default.(int)
			n := args.Int(p.Name, def)
			if n < 0 {
				n = def
			}
			if n != 0 {
				resolved[p.Name] = n
			} else if p.Required {
				return nil, errors.MissingArgument(p.Name)
			}
		default:
			def, _ := p.Default.(string)
			value := args.String(p.Name, def)
			if value == "" && p.Required {
				return nil, errors.MissingArgument(p.Name)
			}
			if value != "" && p.validate != nil {
				if err := p.validate(value); err != nil {
					return nil, errors.InvalidArgument(p.Name, err.Error())
				}
			}
			if len(p.Enum) > 0 && value != "" && !slices.Contains(p.Enum, value) {
				return nil, errors.InvalidArgument(p.Name, "must be one of "+strings.Join(p.Enum, ", "))
			}
			resolved[p.Name] = value
		}
	}

	return resolved, nil
}

// Result is the outcome of one tool call: either a payload or a failure
// message, never both.
type Result struct {
	Payload any
	Message string
	Failed  bool

	// Code is the error code behind a failure, when one is known.
	Code string
}

// Success wraps a reshaped payload.
func Success(payload any) Result {
	return Result{Payload: payload}
}

// Failure wraps a human-readable failure message.
func Failure(message string) Result {
	return Result{Message: message, Failed: true}
}
