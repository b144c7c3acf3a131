package domain

import (
	"strings"
)

// NormalizeTagName prepares a tag name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved; uniqueness is checked on TagNameKey.
func NormalizeTagName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// TagNameKey is the case-insensitive comparison key of a tag name.
func TagNameKey(name string) string {
	return strings.ToLower(NormalizeTagName(name))
}
