package errors

import (
	"strings"
	"unicode"
)

// ValidateCatalogName validates a style or header name used for catalog
// lookups and file extraction. It rejects names that could be used for
// path traversal when a name is resolved against an on-disk catalog.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateCatalogName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCatalog, "catalog name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidCatalog, "catalog name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCatalog, "catalog name contains control characters")
		}
	}

	// Names resolve to files inside the catalog directory, so anything
	// that looks like a path component is rejected.
	dangerousPatterns := []string{
		"..",
		"/",
		"\\",
		"\x00",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidCatalog, "catalog name contains invalid sequence: %q", pattern)
		}
	}

	return nil
}

// ValidateAlignment checks that s is one of the recognized alignment
// keywords. An empty string is allowed and means "use the default".
func ValidateAlignment(s string) error {
	switch s {
	case "", "left", "center", "right":
		return nil
	default:
		return New(ErrCodeInvalidAlignment, "invalid alignment: %s (must be 'left', 'center', or 'right')", s)
	}
}
