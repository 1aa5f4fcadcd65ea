package errors

import (
	"strings"
	"unicode"
)

// Puzzle calendar bounds.
const (
	FirstDay = 1
	LastDay  = 25
)

// ValidateDay checks that day falls inside the puzzle calendar.
func ValidateDay(day int) error {
	if day < FirstDay || day > LastDay {
		return New(ErrCodeInvalidDay, "day %d is out of range (%d-%d)", day, FirstDay, LastDay)
	}
	return nil
}

// ValidatePart checks a puzzle part number. Zero means "all parts".
func ValidatePart(part int) error {
	if part < 0 || part > 2 {
		return New(ErrCodeInvalidPart, "part %d is out of range (1-2, or 0 for both)", part)
	}
	return nil
}

// ValidateFormat checks an output format name against the allowed set.
func ValidateFormat(format string, allowed []string) error {
	for _, f := range allowed {
		if f == format {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format %q: must be one of %s", format, strings.Join(allowed, ", "))
}

// ValidateInputPath validates a puzzle input path before it is read.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Absolute paths and ".." are allowed: inputs are local files chosen by the
// user, not paths coming from an untrusted source.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "input path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "input path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "input path contains invalid characters")
		}
	}

	return nil
}
