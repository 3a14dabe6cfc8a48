package stringsutil

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// FirstNonEmpty returns the first candidate that is not empty after trimming,
// or fallback when none qualifies.
func FirstNonEmpty(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return fallback
}

// ContainsFold reports whether substr occurs in s, ignoring case.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Tokens splits s on whitespace and drops empty tokens.
func Tokens(s string) []string {
	return strings.Fields(s)
}
