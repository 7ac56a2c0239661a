package util

import "strings"

// StripCodeFences removes a wrapping markdown fence from model output,
// including a language hint on the opening fence (```json).
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
