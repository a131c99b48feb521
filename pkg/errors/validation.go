package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// MaxLabelLength bounds element labels so exported documents stay readable.
const MaxLabelLength = 256

// ValidateLabel validates an element label.
//
// Empty labels are allowed (elements are unlabeled by default). Labels are
// rejected when they exceed [MaxLabelLength] runes or contain control
// characters other than tab, which would corrupt XML and DOT output.
func ValidateLabel(label string) error {
	if n := len([]rune(label)); n > MaxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (%d runes, max %d)", n, MaxLabelLength)
	}
	for _, r := range label {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed export formats.
// The comparison is case-sensitive; callers normalize user input first.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateOutputPath validates a file path used for writing exports.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Path must name a file (no trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}
	return nil
}
