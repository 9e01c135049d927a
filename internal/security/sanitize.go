package security

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// GitHub account and repository name constraints
const (
	maxNameLength = 100
	namePattern   = `^[A-Za-z0-9._-]+$`
)

var nameRegex = regexp.MustCompile(namePattern)

// ValidateName checks that an owner, username or repository name can be
// substituted into a single endpoint path segment:
// - Only alphanumeric characters, dots, hyphens, and underscores
// - Maximum 100 characters
// - Not empty, not "." or ".."
func ValidateName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s cannot be empty", kind)
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", kind, maxNameLength)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("%s cannot be %q", kind, name)
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%s must contain only alphanumeric characters, dots, hyphens, and underscores: %q", kind, name)
	}

	return nil
}

// ValidateContentPath checks if a repository file path is safe to append to
// a contents endpoint.
// Rejects:
// - Null bytes
// - Control characters (0x00-0x1F, 0x7F)
// - Paths containing ".." components
// - Query or fragment delimiters
// A leading slash is allowed; "/" alone addresses the repository root.
func ValidateContentPath(path string) error {
	// Reject null bytes
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null byte: %q", path)
	}

	// Check for control characters
	for _, r := range path {
		if r < 0x20 || r == 0x7F {
			return fmt.Errorf("path contains control character: %q", path)
		}
	}

	if strings.ContainsAny(path, "?#") {
		return fmt.Errorf("path contains query or fragment delimiter: %q", path)
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return fmt.Errorf("path contains \"..\" component: %q", path)
		}
	}

	return nil
}

// ValidateRef checks a branch, tag or commit reference. Refs may contain
// slashes but never "..", whitespace, or control characters.
func ValidateRef(ref string) error {
	if strings.Contains(ref, "..") {
		return fmt.Errorf("ref contains \"..\": %q", ref)
	}

	for _, r := range ref {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("ref contains whitespace or control character: %q", ref)
		}
	}

	return nil
}
