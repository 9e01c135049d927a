package errors

import (
	"errors"
	"fmt"
)

// Error code constants
const (
	CodeMissingToken        = "MISSING_TOKEN"
	CodeInvalidConfig       = "INVALID_CONFIG"
	CodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE"
	CodeUpstreamError       = "UPSTREAM_ERROR"
	CodeUnknownTool         = "UNKNOWN_TOOL"
	CodeUnknownResource     = "UNKNOWN_RESOURCE"
	CodeMissingArgument     = "MISSING_ARGUMENT"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeReshapeFailed       = "RESHAPE_FAILED"
	CodeInternal            = "INTERNAL_ERROR"
)

// Error represents a ghmcp error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new ghmcp error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ghmcp error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a ghmcp error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var ghErr *Error
	if errors.As(err, &ghErr) {
		return ghErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Message returns the human-readable part of an error, without the code
// prefix. Tool failures are reported to MCP clients with this text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ghErr *Error
	if errors.As(err, &ghErr) {
		if ghErr.wrapped != nil {
			return fmt.Sprintf("%s: %v", ghErr.Message, ghErr.wrapped)
		}
		return ghErr.Message
	}
	return err.Error()
}

// Convenience constructors for each error code

// MissingToken creates a MISSING_TOKEN error.
func MissingToken() *Error {
	return New(CodeMissingToken, "GITHUB_TOKEN is not set")
}

// InvalidConfig creates an INVALID_CONFIG error.
func InvalidConfig(reason string) *Error {
	return New(CodeInvalidConfig, reason)
}

// UpstreamUnreachable creates an UPSTREAM_UNREACHABLE error wrapping the
// transport failure.
func UpstreamUnreachable(endpoint string, err error) *Error {
	return Wrap(CodeUpstreamUnreachable, fmt.Sprintf("GET %s failed", endpoint), err)
}

// UpstreamError creates an UPSTREAM_ERROR error carrying GitHub's own message.
func UpstreamError(message string) *Error {
	return New(CodeUpstreamError, message)
}

// UnknownTool creates an UNKNOWN_TOOL error.
func UnknownTool(name string) *Error {
	return New(CodeUnknownTool, fmt.Sprintf("Unknown tool: %s", name))
}

// UnknownResource creates an UNKNOWN_RESOURCE error.
func UnknownResource(uri string) *Error {
	return New(CodeUnknownResource, fmt.Sprintf("Unknown resource: %s", uri))
}

// MissingArgument creates a MISSING_ARGUMENT error.
func MissingArgument(name string) *Error {
	return New(CodeMissingArgument, fmt.Sprintf("missing required argument: %s", name))
}

// InvalidArgument creates an INVALID_ARGUMENT error.
func InvalidArgument(name, reason string) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf("invalid %s: %s", name, reason))
}

// ReshapeFailed creates a RESHAPE_FAILED error wrapping the decode failure.
func ReshapeFailed(tool string, err error) *Error {
	return Wrap(CodeReshapeFailed, fmt.Sprintf("unexpected %s response", tool), err)
}
