package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "simple error",
			err:      New(CodeUpstreamError, "Not Found"),
			expected: "UPSTREAM_ERROR: Not Found",
		},
		{
			name:     "wrapped error",
			err:      Wrap(CodeUpstreamUnreachable, "GET /user failed", fmt.Errorf("connection refused")),
			expected: "UPSTREAM_UNREACHABLE: GET /user failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Run("no wrapped error", func(t *testing.T) {
		err := New(CodeUnknownTool, "Unknown tool: x")
		if err.Unwrap() != nil {
			t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
		}
	})

	t.Run("with wrapped error", func(t *testing.T) {
		underlying := fmt.Errorf("dial tcp: timeout")
		err := Wrap(CodeUpstreamUnreachable, "GET /user failed", underlying)

		unwrapped := err.Unwrap()
		if unwrapped == nil {
			t.Fatal("Unwrap() = nil, want error")
		}
		if unwrapped.Error() != "dial tcp: timeout" {
			t.Errorf("Unwrap() = %q, want %q", unwrapped.Error(), "dial tcp: timeout")
		}
	})

	t.Run("stdlib errors.Is compatibility", func(t *testing.T) {
		underlying := fmt.Errorf("dial tcp: timeout")
		err := Wrap(CodeUpstreamUnreachable, "GET /user failed", underlying)

		if !errors.Is(err, underlying) {
			t.Error("errors.Is() = false, want true for wrapped error")
		}
	})

	t.Run("stdlib errors.As compatibility", func(t *testing.T) {
		err := New(CodeUnknownResource, "Unknown resource: x://y")

		var ghErr *Error
		if !errors.As(err, &ghErr) {
			t.Error("errors.As() = false, want true for ghmcp error")
		}
		if ghErr.Code != CodeUnknownResource {
			t.Errorf("errors.As() code = %q, want %q", ghErr.Code, CodeUnknownResource)
		}
	})
}

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "ghmcp error",
			err:      New(CodeMissingToken, "no token"),
			expected: CodeMissingToken,
		},
		{
			name:     "wrapped ghmcp error",
			err:      Wrap(CodeReshapeFailed, "bad payload", fmt.Errorf("json: cannot unmarshal")),
			expected: CodeReshapeFailed,
		},
		{
			name:     "standard error",
			err:      fmt.Errorf("standard error"),
			expected: "",
		},
		{
			name:     "wrapped standard error",
			err:      fmt.Errorf("wrapped: %w", New(CodeInvalidConfig, "bad url")),
			expected: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Code(tt.err)
			if got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIs(t *testing.T) {
	if Is(nil, CodeMissingToken) {
		t.Error("Is(nil) = true, want false")
	}
	if !Is(MissingToken(), CodeMissingToken) {
		t.Error("Is() = false for matching code")
	}
	if Is(MissingToken(), CodeInvalidConfig) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(fmt.Errorf("plain"), CodeMissingToken) {
		t.Error("Is() = true for standard error")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "upstream message is passed through",
			err:      UpstreamError("Bad credentials"),
			expected: "Bad credentials",
		},
		{
			name:     "unknown tool",
			err:      UnknownTool("bogus_tool"),
			expected: "Unknown tool: bogus_tool",
		},
		{
			name:     "wrapped error keeps cause",
			err:      UpstreamUnreachable("/user", fmt.Errorf("connection refused")),
			expected: "GET /user failed: connection refused",
		},
		{
			name:     "standard error",
			err:      fmt.Errorf("boom"),
			expected: "boom",
		},
		{
			name:     "ghmcp error behind fmt wrapping",
			err:      fmt.Errorf("outer: %w", MissingArgument("owner")),
			expected: "missing required argument: owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.expected {
				t.Errorf("Message() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Test all convenience constructors
func TestMissingToken(t *testing.T) {
	err := MissingToken()

	if err.Code != CodeMissingToken {
		t.Errorf("Code = %q, want %q", err.Code, CodeMissingToken)
	}
	if !strings.Contains(err.Message, "GITHUB_TOKEN") {
		t.Errorf("Message = %q, should mention GITHUB_TOKEN", err.Message)
	}
}

func TestUpstreamUnreachable(t *testing.T) {
	underlying := fmt.Errorf("no such host")
	err := UpstreamUnreachable("/repos/a/b", underlying)

	if err.Code != CodeUpstreamUnreachable {
		t.Errorf("Code = %q, want %q", err.Code, CodeUpstreamUnreachable)
	}
	if !strings.Contains(err.Message, "/repos/a/b") {
		t.Errorf("Message = %q, should contain endpoint", err.Message)
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestUnknownResource(t *testing.T) {
	err := UnknownResource("github://user/stars")

	if err.Code != CodeUnknownResource {
		t.Errorf("Code = %q, want %q", err.Code, CodeUnknownResource)
	}
	if err.Message != "Unknown resource: github://user/stars" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("path", "contains \"..\"")

	if err.Code != CodeInvalidArgument {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidArgument)
	}
	if !strings.HasPrefix(err.Message, "invalid path") {
		t.Errorf("Message = %q, should start with %q", err.Message, "invalid path")
	}
}

func TestReshapeFailed(t *testing.T) {
	underlying := fmt.Errorf("json: cannot unmarshal string")
	err := ReshapeFailed("get_repo", underlying)

	if err.Code != CodeReshapeFailed {
		t.Errorf("Code = %q, want %q", err.Code, CodeReshapeFailed)
	}
	if !strings.Contains(err.Error(), "get_repo") {
		t.Errorf("Error() = %q, should name the tool", err.Error())
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func BenchmarkCode(b *testing.B) {
	err := New(CodeUpstreamError, "Not Found")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Code(err)
	}
}

func BenchmarkMessage(b *testing.B) {
	err := UpstreamUnreachable("/user", fmt.Errorf("refused"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Message(err)
	}
}
