package helpers

import "strings"

// NullIfBlank returns nil for a nil or whitespace-only string so the column is stored as NULL.
// Otherwise it returns a pointer to the trimmed value.
func NullIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
