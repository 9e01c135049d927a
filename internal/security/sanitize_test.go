package security

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errMsg  string
		wantErr bool
	}{
		// Valid cases
		{name: "simple login", input: "octocat", wantErr: false},
		{name: "with hyphens", input: "my-org", wantErr: false},
		{name: "with underscores", input: "my_repo", wantErr: false},
		{name: "with dots", input: "socket.io", wantErr: false},
		{name: "dot prefixed repo", input: ".github", wantErr: false},
		{name: "numbers only", input: "123456", wantErr: false},
		{name: "max length 100", input: strings.Repeat("a", 100), wantErr: false},

		// Invalid cases - empty
		{name: "empty string", input: "", wantErr: true, errMsg: "cannot be empty"},

		// Invalid cases - length
		{name: "exceeds max length", input: strings.Repeat("a", 101), wantErr: true, errMsg: "exceeds maximum length"},

		// Invalid cases - traversal
		{name: "single dot", input: ".", wantErr: true, errMsg: "cannot be"},
		{name: "double dot", input: "..", wantErr: true, errMsg: "cannot be"},

		// Invalid cases - invalid characters
		{name: "with spaces", input: "my repo", wantErr: true, errMsg: "alphanumeric"},
		{name: "with slashes", input: "owner/repo", wantErr: true, errMsg: "alphanumeric"},
		{name: "with query", input: "repo?x=1", wantErr: true, errMsg: "alphanumeric"},
		{name: "with unicode", input: "repo文件", wantErr: true, errMsg: "alphanumeric"},
		{name: "with null byte", input: "repo\x00", wantErr: true, errMsg: "alphanumeric"},
		{name: "with newline", input: "repo\n", wantErr: true, errMsg: "alphanumeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("repo", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateName(%q) expected error, got nil", tt.input)
					return
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateName(%q) error = %v, want error containing %q", tt.input, err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateName(%q) unexpected error = %v", tt.input, err)
				}
			}
		})
	}
}

func TestValidateName_KindInMessage(t *testing.T) {
	err := ValidateName("owner", "")
	if err == nil || !strings.HasPrefix(err.Error(), "owner") {
		t.Errorf("expected error to start with the argument kind, got %v", err)
	}
}

func TestValidateContentPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errMsg  string
		wantErr bool
	}{
		// Valid cases
		{name: "simple file", input: "README.md", wantErr: false},
		{name: "nested path", input: "src/index.js", wantErr: false},
		{name: "leading slash", input: "/docs/guide.md", wantErr: false},
		{name: "repository root", input: "/", wantErr: false},
		{name: "dotfile", input: ".github/workflows/ci.yml", wantErr: false},
		{name: "spaces", input: "docs/My Notes.md", wantErr: false},
		{name: "double dots inside a name", input: "a..b.txt", wantErr: false},

		// Invalid cases
		{name: "parent traversal", input: "../../user", wantErr: true, errMsg: "\"..\" component"},
		{name: "embedded traversal", input: "src/../../../user", wantErr: true, errMsg: "\"..\" component"},
		{name: "null byte", input: "file\x00.txt", wantErr: true, errMsg: "null byte"},
		{name: "newline", input: "file\n.txt", wantErr: true, errMsg: "control character"},
		{name: "delete char", input: "file\x7f", wantErr: true, errMsg: "control character"},
		{name: "query delimiter", input: "README.md?ref=evil", wantErr: true, errMsg: "delimiter"},
		{name: "fragment delimiter", input: "README.md#top", wantErr: true, errMsg: "delimiter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentPath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateContentPath(%q) expected error, got nil", tt.input)
					return
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateContentPath(%q) error = %v, want error containing %q", tt.input, err, tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("ValidateContentPath(%q) unexpected error = %v", tt.input, err)
			}
		})
	}
}

func TestValidateRef(t *testing.T) {
	valid := []string{"", "main", "feature/login", "v1.2.3", "a1b2c3d"}
	for _, ref := range valid {
		if err := ValidateRef(ref); err != nil {
			t.Errorf("ValidateRef(%q) unexpected error = %v", ref, err)
		}
	}

	invalid := []string{"main..dev", "my branch", "main\t", "ref\x00"}
	for _, ref := range invalid {
		if err := ValidateRef(ref); err == nil {
			t.Errorf("ValidateRef(%q) expected error, got nil", ref)
		}
	}
}
