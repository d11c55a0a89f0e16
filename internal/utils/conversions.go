package utils

import "strings"

// SplitTrimmed splits s on sep, trimming each part and dropping empty ones.
func SplitTrimmed(s, sep string) []string {
	parts := make([]string, 0)
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Lowered returns a lower-cased copy of every string in slice.
func Lowered(slice []string) []string {
	out := make([]string, 0, len(slice))
	for _, s := range slice {
		out = append(out, strings.ToLower(s))
	}
	return out
}

// Ptr returns a pointer to a copy of v, for optional fields such as a comment's parent.
func Ptr[T any](v T) *T {
	return &v
}
