package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID checks that a diagram node identifier can be emitted as a
// quoted DOT string and referenced by edges.
//
// The rules are deliberately narrow:
//   - No empty identifiers
//   - No control characters (newlines would split the statement)
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeMissingField, "node id cannot be empty")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id %q contains control characters", id)
		}
	}

	return nil
}

// ValidateOutputPath checks that an output path names a file, not a directory.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidInput, "output path %q must name a file, not a directory", path)
	}

	return nil
}
